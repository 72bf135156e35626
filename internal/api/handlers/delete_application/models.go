package delete_application

// DeleteApplicationRequest HTTP request model
// Пароль администратора передается в теле каждого запроса удаления
type DeleteApplicationRequest struct {
	Password string `json:"password"`
}

// DeleteApplicationResponse тело успешного ответа
type DeleteApplicationResponse struct {
	Message string `json:"message"`
}
