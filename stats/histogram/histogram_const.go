package histogram

// break 计算方法
type Method int

const (
	METHOD_SCOTT Method = iota // "scott"
	METHOD_ERROR               // "ERROR"
)

func (m Method) String() string {
	switch m {
	case METHOD_SCOTT:
		return "scott"
	default:
		return "ERROR"
	}
}

func GetMethod(s string) Method {
	switch s {
	case "scott":
		return METHOD_SCOTT
	default:
		return METHOD_ERROR
	}
}
