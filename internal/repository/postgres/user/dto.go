package user

type SignInRequest struct {
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}
