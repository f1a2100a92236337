package errCode

// 业务错误码
const (
	EMPTY_VALUE    = 10001 // 输入为空
	INVALID_VALUE  = 10002 // 参数非法
	OUT_OF_RANGE   = 10003 // 数值超出直方图范围
	PRECOND_FAILED = 10004 // 前置条件不满足
	COUNT_BOUNDS   = 10005 // 计数越界(上溢/下溢/索引)
)
