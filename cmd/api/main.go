package main

import "uptimeapi/internal/app"

// @title           Uptime API
// @version         1.0
// @description     JSON API мониторинга доступности: аккаунты, bearer-токены и проверки URL поверх файлового хранилища.

// @host      localhost:3000
// @BasePath  /
func main() {
	app.Run()
}
