package model

type ConvertRequestBody struct {
	Song    string `json:"song"`
	Dialect string `json:"dialect"`
}

type ConvertResponse struct {
	Output   string   `json:"output"`
	Warnings []string `json:"warnings,omitempty"`
}
