package tools

// Tool names
const (
	ToolNewSession      = "new_session"
	ToolCloseSession    = "close_session"
	ToolListSessions    = "list_sessions"
	ToolGetState        = "get_state"
	ToolAppendNumber    = "append_number"
	ToolChooseOperation = "choose_operation"
	ToolCompute         = "compute"
	ToolClear           = "clear"
	ToolDeleteLast      = "delete_last"
	ToolPercent         = "percent"
	ToolPressKeys       = "press_keys"
	ToolCalculate       = "calculate"
)

// Parameter names shared by several tools
const (
	paramSessionID = "session_id"
	paramInput     = "input"
	paramOperator  = "operator"
	paramKeys      = "keys"
)

// operatorValues lists the operator spellings accepted by tools
var operatorValues = []string{"+", "-", "*", "/", "add", "subtract", "multiply", "divide"}
