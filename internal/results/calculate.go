package results

// CalculateToolResult represents the result of the stateless calculate tool
type CalculateToolResult struct {
	Message   string            `json:"message"`
	Arguments CalculateToolArgs `json:"arguments"`
	Result    string            `json:"result"`
	Undefined bool              `json:"undefined"`
}

// CalculateToolArgs represents the arguments for the calculate tool
type CalculateToolArgs struct {
	A        float64 `json:"a"`
	B        float64 `json:"b"`
	Operator string  `json:"operator"`
}
