package models

// Check — наблюдаемый URL. Id проверки обязан числиться в Checks владельца.
type Check struct {
	ID             string `json:"id"`
	UserPhone      string `json:"userPhone"` // обратная ссылка на аккаунт
	Protocol       string `json:"protocol"`  // http | https
	URL            string `json:"url"`
	Method         string `json:"method"` // get | post | put | delete
	SuccessCodes   []int  `json:"successCodes"`
	TimeoutSeconds int    `json:"timeoutSeconds"` // 1..5
}

type CreateCheckRequest struct {
	Protocol       string `json:"protocol"`
	URL            string `json:"url"`
	Method         string `json:"method"`
	SuccessCodes   []int  `json:"successCodes"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// CheckPatch — частичное обновление; нулевые значения означают "не трогать".
type CheckPatch struct {
	Protocol       string `json:"protocol"`
	URL            string `json:"url"`
	Method         string `json:"method"`
	SuccessCodes   []int  `json:"successCodes"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}
