package handler

type entryPath struct {
	Key string `param:"key" validate:"required,sessionkey"`
}

type putEntryRequest struct {
	Key   string `param:"key"   json:"-"     validate:"required,sessionkey"`
	Value string `json:"value"  validate:"max=65536"`
}

type tokenResponse struct {
	Token *string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}
