package model

type ValidateResult struct {
	Legal   bool        `json:"legal"`
	Root    string      `json:"root"`
	Shape   string      `json:"shape,omitempty"`
	Reason  string      `json:"reason,omitempty"`
	Classes []uint8     `json:"classes"`
	Label   *ChordLabel `json:"label"`
}

type RenderRequestBody struct {
	Voicing
	Duration  uint32 `json:"duration"`
	Unchecked bool   `json:"unchecked"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
