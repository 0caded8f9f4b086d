package metrics

// Attribute keys attached to every instrument.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrOperation = "operation"
)

// Values of AttrOperation.
const (
	OperationSearch = "search"
	OperationDetail = "detail"
)

// PathOther is the AttrPath value for routes outside the API surface.
const PathOther = "other"
