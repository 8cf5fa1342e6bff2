package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count"`
	Strength  bool  `json:"strength"`
	Hash      bool  `json:"hash"`
}

// PasswordStrength is the heuristic rating attached to a generated password
// when the request asks for it.
type PasswordStrength struct {
	Score int    `json:"score"`
	Tier  string `json:"tier"`
}

// GeneratedPassword is a single generated password with its optional extras.
type GeneratedPassword struct {
	Password string            `json:"password"`
	Length   int               `json:"length"`
	Strength *PasswordStrength `json:"strength,omitempty"`
	Hash     string            `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Count     int                 `json:"count"`
	Passwords []GeneratedPassword `json:"passwords"`
}
