package inbound

type AddCodeRequest struct {
	Name      string `json:"name"`
	SecretKey string `json:"secret_key"`
}

type AddCodeResponse struct {
	Name string `json:"name"`
}

func (AddCodeResponse) Message() string {
	return "OTP code added successfully."
}

type DeleteCodeResponse struct {
	Name string `json:"name"`
}

func (DeleteCodeResponse) Message() string {
	return "OTP code deleted successfully."
}

type GetCodeResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type ListCodesResponse struct {
	Names []string `json:"names"`
}
