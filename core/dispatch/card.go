package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flowboard/flowboard/model"
)

// Card is the behavior shared by all card widget seams. A widget holds a
// private shadow copy of its node's payload: every field edit recomputes the
// shadow copy first, so the widget reflects the edit immediately, then emits
// exactly one UpdateNode command carrying the whole payload.
//
// The channel is one-directional. If the canonical payload changes through
// any path other than this widget's own edits, the shadow copy goes stale
// until the host calls Reset.
type Card interface {
	ID() string
	Type() model.NodeType
	// Data returns the current shadow copy.
	Data() model.CardData
	// Reset replaces the shadow copy without emitting a command.
	Reset(data model.CardData)
	// Duplicate requests a sibling node cloned from the shadow copy.
	Duplicate()
	// Delete requests removal of the widget's node.
	Delete()
}

// NewCard builds the widget seam matching the node's type, bound to the
// injected dispatcher.
func NewCard(node model.Node, d Dispatcher) (Card, error) {
	switch node.Type {
	case model.NodeTypeBet:
		return NewBetCard(node, d)
	case model.NodeTypeWork:
		return NewWorkCard(node, d)
	case model.NodeTypeMetric:
		return NewMetricCard(node, d)
	}
	return nil, fmt.Errorf("unknown node type %q", node.Type)
}

type card struct {
	id         string
	nodeType   model.NodeType
	data       model.CardData
	dispatcher Dispatcher
}

func newCard(node model.Node, want model.NodeType, d Dispatcher) (card, error) {
	if node.Type != want {
		return card{}, fmt.Errorf("node %q is a %s card, not %s", node.ID, node.Type, want)
	}
	c := card{id: node.ID, nodeType: node.Type, dispatcher: d}
	if node.Data != nil {
		c.data = node.Data.Clone()
	}
	return c, nil
}

func (c *card) ID() string           { return c.id }
func (c *card) Type() model.NodeType { return c.nodeType }

func (c *card) Data() model.CardData {
	if c.data == nil {
		return nil
	}
	return c.data.Clone()
}

func (c *card) Reset(data model.CardData) {
	if data == nil {
		c.data = nil
		return
	}
	c.data = data.Clone()
}

// emit sends the whole shadow copy as one update command.
func (c *card) emit() {
	c.dispatcher.Dispatch(model.UpdateNode{ID: c.id, Data: c.data.Clone()})
}

func (c *card) Duplicate() {
	var data model.CardData
	if c.data != nil {
		data = c.data.Clone()
	}
	c.dispatcher.Dispatch(model.DuplicateNode{ID: c.id, Type: c.nodeType, Data: data})
}

func (c *card) Delete() {
	c.dispatcher.Dispatch(model.DeleteNode{ID: c.id})
}

// parseCount coerces free-text numeric input. Parse failures fall back to 0
// rather than surfacing an error to the user.
func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// BetCard is the widget seam for a bet card.
type BetCard struct {
	card
}

// NewBetCard binds a bet widget to its node and dispatcher.
func NewBetCard(node model.Node, d Dispatcher) (*BetCard, error) {
	base, err := newCard(node, model.NodeTypeBet, d)
	if err != nil {
		return nil, err
	}
	return &BetCard{card: base}, nil
}

func (c *BetCard) bet() model.BetData {
	d, _ := c.data.(model.BetData)
	return d
}

func (c *BetCard) setBet(d model.BetData) {
	c.data = d
	c.emit()
}

func (c *BetCard) SetName(name string) {
	d := c.bet()
	d.Name = name
	c.setBet(d)
}

func (c *BetCard) SetHypothesis(hypothesis string) {
	d := c.bet()
	d.Hypothesis = hypothesis
	c.setBet(d)
}

func (c *BetCard) SetStatus(status string) {
	d := c.bet()
	d.Status = status
	c.setBet(d)
}

func (c *BetCard) SetExternalResource(url string) {
	d := c.bet()
	d.ExternalResource = url
	c.setBet(d)
}

// SetComments accepts the raw input text; non-numeric input becomes 0.
func (c *BetCard) SetComments(raw string) {
	d := c.bet()
	d.Comments = parseCount(raw)
	c.setBet(d)
}

// SetExperimentName renames the experiment at the given index. Out-of-range
// indexes are ignored, matching an input that was never rendered.
func (c *BetCard) SetExperimentName(index int, name string) {
	d := c.bet()
	if index < 0 || index >= len(d.Experiments) {
		return
	}
	experiments := make([]model.Experiment, len(d.Experiments))
	copy(experiments, d.Experiments)
	experiments[index].Name = name
	d.Experiments = experiments
	c.setBet(d)
}

// AddExperiment appends a named experiment to the bet.
func (c *BetCard) AddExperiment(name string) {
	d := c.bet()
	experiments := make([]model.Experiment, len(d.Experiments), len(d.Experiments)+1)
	copy(experiments, d.Experiments)
	d.Experiments = append(experiments, model.Experiment{Name: name})
	c.setBet(d)
}

// RemoveExperiment drops the experiment at the given index. Out-of-range
// indexes are ignored.
func (c *BetCard) RemoveExperiment(index int) {
	d := c.bet()
	if index < 0 || index >= len(d.Experiments) {
		return
	}
	experiments := make([]model.Experiment, 0, len(d.Experiments)-1)
	experiments = append(experiments, d.Experiments[:index]...)
	experiments = append(experiments, d.Experiments[index+1:]...)
	d.Experiments = experiments
	c.setBet(d)
}

// WorkCard is the widget seam for a work item card.
type WorkCard struct {
	card
}

// NewWorkCard binds a work item widget to its node and dispatcher.
func NewWorkCard(node model.Node, d Dispatcher) (*WorkCard, error) {
	base, err := newCard(node, model.NodeTypeWork, d)
	if err != nil {
		return nil, err
	}
	return &WorkCard{card: base}, nil
}

func (c *WorkCard) work() model.WorkData {
	d, _ := c.data.(model.WorkData)
	return d
}

func (c *WorkCard) setWork(d model.WorkData) {
	c.data = d
	c.emit()
}

func (c *WorkCard) SetName(name string) {
	d := c.work()
	d.Name = name
	c.setWork(d)
}

func (c *WorkCard) SetStatus(status string) {
	d := c.work()
	d.Status = status
	c.setWork(d)
}

// SetIssues accepts the raw input text; non-numeric input becomes 0.
func (c *WorkCard) SetIssues(raw string) {
	d := c.work()
	d.Issues = parseCount(raw)
	c.setWork(d)
}

// SetProgress accepts the raw input text; non-numeric input becomes 0.
// Values outside [0,100] are accepted and rendered as-is.
func (c *WorkCard) SetProgress(raw string) {
	d := c.work()
	d.Progress = parseCount(raw)
	c.setWork(d)
}

// SetComments accepts the raw input text; non-numeric input becomes 0.
func (c *WorkCard) SetComments(raw string) {
	d := c.work()
	d.Comments = parseCount(raw)
	c.setWork(d)
}

// MetricCard is the widget seam for a metric card.
type MetricCard struct {
	card
}

// NewMetricCard binds a metric widget to its node and dispatcher.
func NewMetricCard(node model.Node, d Dispatcher) (*MetricCard, error) {
	base, err := newCard(node, model.NodeTypeMetric, d)
	if err != nil {
		return nil, err
	}
	return &MetricCard{card: base}, nil
}

func (c *MetricCard) metric() model.MetricData {
	d, _ := c.data.(model.MetricData)
	return d
}

func (c *MetricCard) setMetric(d model.MetricData) {
	c.data = d
	c.emit()
}

func (c *MetricCard) SetName(name string) {
	d := c.metric()
	d.Name = name
	c.setMetric(d)
}

func (c *MetricCard) SetAggregation(aggregation string) {
	d := c.metric()
	d.Aggregation = aggregation
	c.setMetric(d)
}

// SetComments accepts the raw input text; non-numeric input becomes 0.
func (c *MetricCard) SetComments(raw string) {
	d := c.metric()
	d.Comments = parseCount(raw)
	c.setMetric(d)
}

// SetPeriod renames the period label of the snapshot at the given index.
func (c *MetricCard) SetPeriod(index int, period string) {
	c.updatePeriod(index, func(p *model.MetricPeriod) { p.Period = period })
}

// SetValue replaces the pre-formatted display value of the snapshot at the
// given index.
func (c *MetricCard) SetValue(index int, value string) {
	c.updatePeriod(index, func(p *model.MetricPeriod) { p.Value = value })
}

func (c *MetricCard) updatePeriod(index int, edit func(*model.MetricPeriod)) {
	d := c.metric()
	if index < 0 || index >= len(d.Metrics) {
		return
	}
	metrics := make([]model.MetricPeriod, len(d.Metrics))
	copy(metrics, d.Metrics)
	edit(&metrics[index])
	d.Metrics = metrics
	c.setMetric(d)
}
