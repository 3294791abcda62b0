package handler

import (
	"taskdesk/internal/usecase"
)

var (
	authHandler     *AuthHandler
	employeeHandler *EmployeeHandler
	taskHandler     *TaskHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	employeeUseCase *usecase.EmployeeUseCase,
	taskUseCase *usecase.TaskUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	employeeHandler = NewEmployeeHandler(employeeUseCase)
	taskHandler = NewTaskHandler(taskUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetEmployeeHandler() *EmployeeHandler {
	return employeeHandler
}

func GetTaskHandler() *TaskHandler {
	return taskHandler
}
