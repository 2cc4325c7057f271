package user

type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Age            *int    `json:"age"`
	State          *string `json:"state"`
	Gender         *string `json:"gender"`
	Occupation     *string `json:"occupation" binding:"omitempty,oneof='' Student Salaried Self-Employed Unemployed Other"`
	AnnualIncome   *int    `json:"annualIncome"`
	CasteCategory  *string `json:"casteCategory" binding:"omitempty,oneof='' General OBC SC ST Other"`
	IsBPL          *bool   `json:"isBPL"`
	IsDisabled     *bool   `json:"isDisabled"`
	EducationLevel *int    `json:"educationLevel" binding:"omitempty,min=0,max=5"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required"`
}
