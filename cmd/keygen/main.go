// Command keygen provisions a custodial key for a family member.
//
// It generates a secp256k1 key, seals it under a fresh DEK wrapped by the
// master key and stores the result on the user row, resetting the export latch.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-family-wallet/internal/keyvault"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/repositories"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// KeyMaterialSaver stores provisioned key material.
type KeyMaterialSaver interface {
	SaveKeyMaterial(ctx context.Context, userID, address, encryptedKey, dek string) error
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	userID := flag.String("user", "", "User id to provision a key for")
	genMaster := flag.Bool("gen-master", false, "Print a new KMS master key and exit")
	flag.Parse()

	if *genMaster {
		key, err := keyvault.GenerateMasterKey()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(key)
		return
	}

	if *userID == "" {
		log.Fatal("-user is required")
	}

	_ = godotenv.Load(*configPath)
	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	kms, err := keyvault.NewLocalKMS(os.Getenv("KMS_MASTER_KEY"))
	if err != nil {
		log.Fatalf("init kms: %v", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "database"),
	)

	ctx := context.Background()
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatalf("postgres connection error: %v", err)
	}
	defer db.Close()

	address, err := provision(ctx, repositories.NewUserWriteRepository(db), kms, *userID)
	if err != nil {
		log.Fatalf("provision key: %v", err)
	}
	fmt.Println(address)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

// provision generates a key for userID, stores it sealed and returns its address.
func provision(ctx context.Context, saver KeyMaterialSaver, sealer keyvault.Sealer, userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	priv, err := crypto.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}

	raw := keyvault.NewSecretKey(crypto.FromECDSA(priv))
	defer raw.Destroy()
	address := crypto.PubkeyToAddress(priv.PublicKey).Hex()

	blob, wrapped, err := keyvault.Encrypt(ctx, sealer, raw.Bytes())
	if err != nil {
		return "", fmt.Errorf("seal key: %w", err)
	}

	if err := saver.SaveKeyMaterial(ctx, userID, address, blob, wrapped); err != nil {
		return "", err
	}

	logger.Log.Infow("Key provisioned", "user_id", userID, "address", address)
	return address, nil
}
