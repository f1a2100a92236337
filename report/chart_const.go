package report

// 图表绘制类型
type ChartType int

const (
	CHART_LINE  ChartType = iota // "line"
	CHART_BAR                    // "bar"
	CHART_ERROR                  // "ERROR"
)

func (t ChartType) String() string {
	switch t {
	case CHART_LINE:
		return "line"
	case CHART_BAR:
		return "bar"
	default:
		return "ERROR"
	}
}

func GetChartType(s string) ChartType {
	switch s {
	case "line":
		return CHART_LINE
	case "bar":
		return CHART_BAR
	default:
		return CHART_ERROR
	}
}
