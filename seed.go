package flowboard

import "github.com/flowboard/flowboard/model"

// Seed returns the starter board: two bets feeding five work items feeding a
// metric tree. Callers get fresh copies; mutating the result never affects
// later calls.
func Seed() ([]model.Node, []model.Edge) {
	return seedNodes(), seedEdges()
}

func seedNodes() []model.Node {
	return []model.Node{
		// Bets (left side).
		{
			ID: "bet-1", Type: model.NodeTypeBet, Position: model.Position{X: -1200, Y: 200}, Draggable: true,
			Data: model.BetData{
				Name:        "Launch push notifications",
				Hypothesis:  "Push notifications will entice users to come back to our app more frequently.",
				Status:      "Active",
				Experiments: []model.Experiment{{Name: "Ivory slot"}},
			},
		},
		{
			ID: "bet-2", Type: model.NodeTypeBet, Position: model.Position{X: -1200, Y: 800}, Draggable: true,
			Data: model.BetData{
				Name:        "Improve song recommendations",
				Hypothesis:  "By improving song recommendations, users will spend more time listening to music in each session.",
				Status:      "Active",
				Experiments: []model.Experiment{},
			},
		},

		// Work items (middle).
		{
			ID: "work-1", Type: model.NodeTypeWork, Position: model.Position{X: -600, Y: 0}, Draggable: true,
			Data: model.WorkData{Source: "web", Name: "New marketing campaign", Issues: 5, Progress: 67, Status: "In progress"},
		},
		{
			ID: "work-2", Type: model.NodeTypeWork, Position: model.Position{X: -600, Y: 300}, Draggable: true,
			Data: model.WorkData{Source: "web", Name: "Social notifications", Issues: 4, Progress: 50, Status: "In progress"},
		},
		{
			ID: "work-3", Type: model.NodeTypeWork, Position: model.Position{X: -600, Y: 600}, Draggable: true,
			Data: model.WorkData{Source: "web", Name: "Time-based notifications", Issues: 1, Progress: 100, Status: "Done"},
		},
		{
			ID: "work-4", Type: model.NodeTypeWork, Position: model.Position{X: -600, Y: 900}, Draggable: true,
			Data: model.WorkData{Source: "jira", Name: "AI model for song recommendations", Issues: 4, Progress: 25, Status: "In progress"},
		},
		{
			ID: "work-5", Type: model.NodeTypeWork, Position: model.Position{X: -600, Y: 1200}, Draggable: true,
			Data: model.WorkData{Source: "web", Name: "More prominent sharing prompts", Issues: 3, Progress: 50, Status: "In progress"},
		},

		// Metrics, first column.
		{
			ID: "metric-1", Type: model.NodeTypeMetric, Position: model.Position{X: 0, Y: 0}, Draggable: true,
			Data: model.MetricData{
				Name: "Premium trial users",
				Metrics: []model.MetricPeriod{
					{Period: "Past 7 days", Value: "5,674", Change: 0.35},
					{Period: "Past 6 weeks", Value: "33,779", Change: 2.32},
					{Period: "Past 12 months", Value: "168,608", Change: -25.24},
				},
				Aggregation: "Sum",
			},
		},
		{
			ID: "metric-2", Type: model.NodeTypeMetric, Position: model.Position{X: 0, Y: 300}, Draggable: true,
			Data: model.MetricData{
				Name: "Avg. sessions per week",
				Metrics: []model.MetricPeriod{
					{Period: "Past 7 days", Value: "808.92", Change: 0.57},
					{Period: "Past 6 weeks", Value: "800.63", Change: 1.26},
					{Period: "Past 12 months", Value: "749.86", Change: 21.79},
				},
				Aggregation: "Average",
			},
		},
		{
			ID: "metric-3", Type: model.NodeTypeMetric, Position: model.Position{X: 0, Y: 600}, Draggable: true,
			Data: model.MetricData{
				Name: "Average session duration",
				Metrics: []model.MetricPeriod{
					{Period: "MTD", Value: "0"},
					{Period: "QTD", Value: "0"},
					{Period: "YTD", Value: "0", Change: -100},
				},
				Aggregation: "Sum",
			},
		},
		{
			ID: "metric-4", Type: model.NodeTypeMetric, Position: model.Position{X: 0, Y: 900}, Draggable: true,
			Data: model.MetricData{
				Name: "Avg. shares per session",
				Metrics: []model.MetricPeriod{
					{Period: "Past 7 days", Value: "879.02", Change: 0.68},
					{Period: "Past 6 weeks", Value: "869.18", Change: 1.99},
					{Period: "Past 12 months", Value: "797.14", Change: 25.72},
				},
				Aggregation: "Average",
			},
		},

		// Metrics, second column.
		{
			ID: "metric-5", Type: model.NodeTypeMetric, Position: model.Position{X: 600, Y: 450}, Draggable: true,
			Data: model.MetricData{
				Name: "Time spent listening to music by subscribers",
				Metrics: []model.MetricPeriod{
					{Period: "Past 7 days", Value: "5.82K mins", Change: 0.61},
					{Period: "Past 6 weeks", Value: "34.41K mins", Change: 3.03},
					{Period: "Past 12 months", Value: "262.48K mins", Change: 22.18},
				},
				Aggregation: "Sum",
			},
		},

		// Metrics, third column.
		{
			ID: "metric-6", Type: model.NodeTypeMetric, Position: model.Position{X: 1200, Y: 0}, Draggable: true,
			Data: model.MetricData{
				Name: "ARR",
				Metrics: []model.MetricPeriod{
					{Period: "Past 7 days", Value: "0", Change: 100},
					{Period: "Past 6 weeks", Value: "-US$7,344"},
					{Period: "Past 12 months", Value: "-US$51,240", Change: -159.32},
				},
				Aggregation: "Amount increased",
			},
		},
		{
			ID: "metric-7", Type: model.NodeTypeMetric, Position: model.Position{X: 1200, Y: 450}, Draggable: true,
			Data: model.MetricData{
				Name: "Monthly retention",
				Metrics: []model.MetricPeriod{
					{Period: "Past 7 days", Value: "92,259.03%", Change: 0.24},
					{Period: "Past 6 weeks", Value: "91,746.69%", Change: 2.01},
					{Period: "Past 12 months", Value: "85,957.90%", Change: 24.22},
				},
				Aggregation: "Average",
			},
		},
		{
			ID: "metric-8", Type: model.NodeTypeMetric, Position: model.Position{X: 1200, Y: 900}, Draggable: true,
			Data: model.MetricData{
				Name: "Monthly premium subscriptions",
				Metrics: []model.MetricPeriod{
					{Period: "Past 7 days", Value: "6,430.66", Change: 0.39},
					{Period: "Past 6 weeks", Value: "35,448.03", Change: 2.85},
					{Period: "Past 12 months", Value: "299,024.49", Change: 28.04},
				},
				Aggregation: "Sum",
			},
		},
	}
}

func seedEdges() []model.Edge {
	// Bet->work and work->metric links start unevaluated; metric->metric
	// links ship with correlation values.
	unevaluated := func(source, target string) model.Edge {
		return model.Edge{
			ID:           source + "-" + target,
			Source:       source,
			Target:       target,
			SourceHandle: model.HandleRight,
			TargetHandle: model.HandleLeft,
			Animated:     true,
			Style:        model.DefaultEdgeStyle(),
		}
	}
	correlated := func(source, target string, value float64) model.Edge {
		edge := unevaluated(source, target)
		edge.Data = model.NewEdgeData(value)
		stroke := "#4CD964"
		if value < 0 {
			stroke = "#E53E3E"
		}
		edge.Style = model.EdgeStyle{StrokeWidth: 2, Stroke: stroke, StrokeOpacity: 0.7}
		return edge
	}

	return []model.Edge{
		unevaluated("bet-1", "work-2"),
		unevaluated("bet-1", "work-3"),
		unevaluated("bet-2", "work-4"),

		unevaluated("work-1", "metric-1"),
		unevaluated("work-2", "metric-2"),
		unevaluated("work-3", "metric-2"),
		unevaluated("work-4", "metric-3"),
		unevaluated("work-5", "metric-4"),

		correlated("metric-1", "metric-5", 0.999),
		correlated("metric-2", "metric-5", 0.711),
		correlated("metric-3", "metric-5", -0.644),
		correlated("metric-4", "metric-5", 0.999),

		correlated("metric-5", "metric-6", 0.999),
		correlated("metric-5", "metric-7", 0.999),
		correlated("metric-5", "metric-8", 0.999),
	}
}
