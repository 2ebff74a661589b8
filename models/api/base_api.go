package apimodels

// Ошибки наружу отдаются телом {"message": "..."} — контракт, на который
// завязан клиент. Успешные ответы возвращают сущность без обёртки.

type ErrorResponse struct {
	Message string `json:"message"`
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // записей на странице
	Page  int `json:"page" query:"page"`   // страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 20
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
