package models

// Operator — запись реестра зарегистрированных операторов.
// Email хранится в нижнем регистре и уникален в пределах реестра.
type Operator struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	RegisteredAt int64  `json:"registered_at"`
}

type BeginAuthRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username"`
	Register bool   `json:"register"`
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}
