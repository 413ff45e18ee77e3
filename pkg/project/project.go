package project

// Name is the server name reported to MCP clients
const Name = "calculator-mcp"

// Version is the server version reported to MCP clients
const Version = "0.1.0"
