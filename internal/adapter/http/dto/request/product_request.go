package request

type CreateProductRequest struct {
	Name string `json:"name" binding:"required"`
}

type ApproveProductRequest struct {
	Notes string `json:"notes"`
}

type DeclineProductRequest struct {
	Reason string `json:"reason" binding:"required"`
}
