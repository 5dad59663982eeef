package branch

type CreateBranchRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBranchRequest struct {
	Name string `json:"name" binding:"required"`
}

type BranchResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
