// adminctl создаёт или обновляет пользователя и выдаёт ему права администратора.
// Это не часть сервера, а вспомогательный скрипт для первичной настройки
package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"logging-web-server/config"
	"logging-web-server/internal/model"
	"logging-web-server/internal/repository"
	"logging-web-server/internal/security"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const passwordKeys = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// randomPassword генерирует случайный пароль заданной длины
func randomPassword(size int) (string, error) {
	var builder strings.Builder
	for i := 0; i < size; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordKeys))))
		if err != nil {
			return "", err
		}
		builder.WriteByte(passwordKeys[n.Int64()])
	}
	return builder.String(), nil
}

func main() {
	fmt.Println("Этот скрипт создаёт или обновляет пользователя и выдаёт права администратора")
	if len(os.Args) < 2 {
		fmt.Println("Укажите имя пользователя аргументом")
		return
	}
	username := os.Args[1]

	randPass, err := randomPassword(12)
	if err != nil {
		log.Fatalf("ошибка генерации пароля: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Нажмите enter, чтобы использовать случайный пароль")

	fmt.Printf("Пароль > (%s) ", randPass)
	password, _ := reader.ReadString('\n')
	password = strings.TrimSpace(password)
	if password == "" {
		password = randPass
	}

	fmt.Printf("Подтверждение > (%s) ", randPass)
	passwordConfirm, _ := reader.ReadString('\n')
	passwordConfirm = strings.TrimSpace(passwordConfirm)
	if passwordConfirm == "" {
		passwordConfirm = randPass
	}

	if password != passwordConfirm {
		fmt.Println("Пароли не совпадают")
		return
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("не удалось подключиться к БД: %v", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		log.Fatalf("ошибка применения миграций: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)

	hash, err := security.HashPassword(password)
	if err != nil {
		log.Fatalf("не удалось создать хэш пароля: %v", err)
	}

	user, err := userRepo.FindByName(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		fmt.Println("Пользователь не найден, создаётся новый")
		user, err = userRepo.CreateUser(ctx, &model.User{
			UUID:         uuid.New().String(),
			Name:         username,
			PasswordHash: hash,
			IsAdmin:      true,
		})
		if err != nil {
			log.Fatalf("ошибка создания пользователя: %v", err)
		}
	} else if err != nil {
		log.Fatalf("ошибка поиска пользователя: %v", err)
	} else {
		if err := userRepo.UpdatePassword(ctx, user.UUID, hash); err != nil {
			log.Fatalf("не удалось обновить пароль: %v", err)
		}
		if err := userRepo.SetAdmin(ctx, user.UUID, true); err != nil {
			log.Fatalf("не удалось выдать права администратора: %v", err)
		}
	}

	fmt.Println("Пользователь создан или обновлён")
	fmt.Println("Имя:", user.Name)
	if password == randPass {
		fmt.Println("Установлен случайный пароль >", randPass)
	}
	fmt.Println("Права администратора выданы")
}
