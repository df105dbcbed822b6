package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Eahtasham/Parent-Teacher-DBMS/app/config"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/database"
	"github.com/Eahtasham/Parent-Teacher-DBMS/app/routes/auth"
)

// Seeds a demo parent, a demo teacher and a student so the portal is
// usable right after the first run.
func main() {
	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	ctx := context.Background()
	accounts := database.NewAccountRepo(db)

	parentID, err := createAccount(func(hash string) (int, error) {
		return accounts.CreateParent(ctx, "parent1", hash)
	}, "parent123")
	if err != nil {
		log.Fatal("Error creating parent:", err)
	}
	fmt.Println("Created parent account: parent1 / parent123")

	_, err = createAccount(func(hash string) (int, error) {
		return accounts.CreateTeacher(ctx, "teacher1", hash)
	}, "teacher123")
	if err != nil {
		log.Fatal("Error creating teacher:", err)
	}
	fmt.Println("Created teacher account: teacher1 / teacher123")

	if _, err := accounts.CreateStudent(ctx, "Alex Doe", parentID); err != nil {
		log.Fatal("Error creating student:", err)
	}
	fmt.Println("Created student: Alex Doe")
}

func createAccount(insert func(hash string) (int, error), password string) (int, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}
	return insert(hash)
}
