package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/dcdesk/dcdesk/domain/entity"
	"github.com/dcdesk/dcdesk/infrastructure/config"
	"github.com/dcdesk/dcdesk/infrastructure/http/validator"
	"github.com/dcdesk/dcdesk/infrastructure/persistence/postgres"
	"github.com/dcdesk/dcdesk/infrastructure/service/password"
)

// Seeds a super_admin identity from the command line, for environments
// where the HTTP setup endpoint is not reachable.
func main() {
	userID := flag.String("user-id", "", "login user id (min 3 characters)")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address")
	pass := flag.String("password", "", "password (min 6 characters)")
	flag.Parse()

	if *userID == "" || *name == "" || *email == "" || *pass == "" {
		fmt.Fprintln(os.Stderr, "usage: create_admin -user-id ID -name NAME -email EMAIL -password PASSWORD")
		os.Exit(2)
	}
	if !validator.ValidateUserID(*userID) {
		fatal("user id must be at least 3 characters")
	}
	if !validator.ValidatePassword(*pass) {
		fatal("password must be at least 6 characters")
	}
	if !validator.ValidateEmail(*email) {
		fatal("invalid email address")
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("configuration error: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		fatal("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		fatal("database unreachable: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)

	exists, err := userRepo.ExistsByUserID(ctx, *userID)
	if err != nil {
		fatal("check user id: %v", err)
	}
	if exists {
		fatal("user id %q already exists", *userID)
	}

	hashed, err := password.NewBcryptService(0).Hash(*pass)
	if err != nil {
		fatal("hash password: %v", err)
	}

	user := entity.NewUser(uuid.New().String(), *userID, *name, *email, hashed, entity.RoleSuperAdmin)
	if err := userRepo.Create(ctx, user); err != nil {
		fatal("create user: %v", err)
	}

	fmt.Printf("created super_admin %s (%s)\n", user.UserID, user.ID)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
