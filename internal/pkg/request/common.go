package request

// ByIDRequest is a common struct for endpoints that require a numeric ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// BySessionRequest binds a planner session ID path parameter.
type BySessionRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
