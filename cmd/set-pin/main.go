package main

import (
	"context"
	"flag"
	"os"

	"koperasi-portal/internal/config"
	"koperasi-portal/internal/repository"
	"koperasi-portal/pkg/database"
	"koperasi-portal/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	memberNumber := flag.String("member", "", "member number, e.g. MB001234")
	pin := flag.String("pin", "", "new login PIN (4-12 digits)")
	flag.Parse()

	// 1. Load Env
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)

	if *memberNumber == "" || len(*pin) < 4 || len(*pin) > 12 {
		flag.Usage()
		os.Exit(2)
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Database setup failed")
	}
	defer database.Close(db)

	ctx := context.Background()
	memberRepo := repository.NewMemberRepo(db)

	// 3. Find Member
	member, err := memberRepo.FindByMemberNumber(ctx, *memberNumber)
	if err != nil {
		log.WithError(err).Fatalf("Member %s not found in database", *memberNumber)
	}

	// 4. Hash new PIN
	if err := member.SetPin(*pin); err != nil {
		log.WithError(err).Fatal("Failed to hash PIN")
	}

	// 5. Update
	if err := memberRepo.UpdatePinHash(ctx, member.ID, member.PinHash); err != nil {
		log.WithError(err).Fatal("Failed to update PIN in DB")
	}

	log.WithField("member_number", member.MemberNumber).Info("PIN updated")
}
