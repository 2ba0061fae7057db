package venue

import (
	"log"
	"os"
	"time"
)

// Location — часовой пояс площадки. Все календарные проекции (дни, недели,
// месячная сетка) считаются в нем, а не в UTC и не в зоне клиента.
var Location = time.UTC

// Init загружает часовой пояс из переменной окружения TIMEZONE.
// По умолчанию — зона площадки Ágora Tech Park.
func Init() {
	name := os.Getenv("TIMEZONE")
	if name == "" {
		name = "America/Sao_Paulo"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Println("Не удалось загрузить часовой пояс", name, "- используется UTC:", err)
		return
	}
	Location = loc
}
