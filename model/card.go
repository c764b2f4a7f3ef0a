package model

// CardData is the variant payload carried by a node. The set of variants is
// closed over the three card types; the unexported marker method keeps
// switches over payloads exhaustive at compile time instead of relying on a
// runtime string switch.
type CardData interface {
	// Kind reports the node type this payload belongs to.
	Kind() NodeType
	// Clone returns a deep copy, including any nested lists.
	Clone() CardData

	isCardData()
}

// Experiment is a named experiment attached to a bet card.
type Experiment struct {
	Name string `json:"name"`
}

// BetData is the payload of a bet card.
type BetData struct {
	Name             string       `json:"name"`
	Hypothesis       string       `json:"hypothesis"`
	Status           string       `json:"status"`
	Comments         int          `json:"comments"`
	Experiments      []Experiment `json:"experiments"`
	ExternalResource string       `json:"externalResource,omitempty"`
}

func (BetData) Kind() NodeType { return NodeTypeBet }
func (BetData) isCardData()    {}

// Clone returns a deep copy including the experiments list.
func (d BetData) Clone() CardData {
	c := d
	c.Experiments = make([]Experiment, len(d.Experiments))
	copy(c.Experiments, d.Experiments)
	return c
}

// WorkData is the payload of a work item card. Progress is a percentage but
// is intentionally not clamped to [0,100]; out-of-range values render as-is.
type WorkData struct {
	Source   string `json:"sourceName"`
	Name     string `json:"name"`
	Issues   int    `json:"issues"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
	Comments int    `json:"comments"`
}

func (WorkData) Kind() NodeType { return NodeTypeWork }
func (WorkData) isCardData()    {}

func (d WorkData) Clone() CardData { return d }

// MetricPeriod is one display snapshot of a metric. Value is the
// pre-formatted display string, not a numeric amount.
type MetricPeriod struct {
	Period string  `json:"period"`
	Value  string  `json:"value"`
	Change float64 `json:"change"`
}

// MetricData is the payload of a metric card. Metrics holds exactly three
// period snapshots.
type MetricData struct {
	Name        string         `json:"name"`
	Metrics     []MetricPeriod `json:"metrics"`
	Comments    int            `json:"comments"`
	Aggregation string         `json:"aggregation"`
}

func (MetricData) Kind() NodeType { return NodeTypeMetric }
func (MetricData) isCardData()    {}

// Clone returns a deep copy including the period snapshots.
func (d MetricData) Clone() CardData {
	c := d
	c.Metrics = make([]MetricPeriod, len(d.Metrics))
	copy(c.Metrics, d.Metrics)
	return c
}
