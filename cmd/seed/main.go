// Package main seeds the database with realistic sample data.
//
// Usage:
//
//	go run ./cmd/seed
//
// The command is idempotent only on an empty database: unique index
// violations on repeated runs are reported as errors.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/memorias-pessoais/memorias-api/internal/adapters/mongodb"
	"github.com/memorias-pessoais/memorias-api/internal/app"
	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/platform/config"
	"github.com/memorias-pessoais/memorias-api/internal/platform/logging"
)

const seedWorkers = 4

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  "pretty",
		Service: cfg.App.Name,
		Version: cfg.App.Version,
	})

	client, err := mongodb.Connect(ctx, mongodb.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		QueryTimeout:   cfg.Mongo.QueryTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("connecting to mongodb: %w", err)
	}

	defer func() {
		if disconnectErr := client.Disconnect(ctx); disconnectErr != nil {
			logger.Error("mongodb disconnect error", slog.Any("error", disconnectErr))
		}
	}()

	if err := client.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensuring mongodb indexes: %w", err)
	}

	logger.Info("seeding database", slog.String("database", cfg.Mongo.Database))

	if err := seed(ctx, client, logger); err != nil {
		return err
	}

	logger.Info("database seeded")

	return nil
}

func seed(ctx context.Context, client *mongodb.Client, logger *slog.Logger) error {
	categoriaRepo := mongodb.NewCategoriaRepository(client)
	pessoaRepo := mongodb.NewPessoaRepository(client)
	memoriaRepo := mongodb.NewMemoriaRepository(client)

	categorias := []domain.Categoria{
		{CategoriaID: 1, Nome: "Viagens"},
		{CategoriaID: 2, Nome: "Família"},
		{CategoriaID: 3, Nome: "Trabalho"},
		{CategoriaID: 4, Nome: "Educação"},
		{CategoriaID: 5, Nome: "Esportes"},
		{CategoriaID: 6, Nome: "Amizades"},
		{CategoriaID: 7, Nome: "Eventos"},
		{CategoriaID: 8, Nome: "Hobbies"},
		{CategoriaID: 9, Nome: "Música"},
		{CategoriaID: 10, Nome: "Tecnologia"},
	}

	err := app.FanOut(ctx, seedWorkers, categorias, func(ctx context.Context, c domain.Categoria) error {
		_, insertErr := categoriaRepo.Insert(ctx, &c)
		return insertErr
	})
	if err != nil {
		return fmt.Errorf("seeding categorias: %w", err)
	}

	logger.Info("categorias inserted", slog.Int("count", len(categorias)))

	pessoas := []domain.Pessoa{
		{Nome: "João Silva", DataNascimento: day(1990, 5, 14)},
		{Nome: "Maria Oliveira", DataNascimento: day(1985, 8, 22)},
		{Nome: "Carlos Souza", DataNascimento: day(2000, 3, 11)},
		{Nome: "Ana Pereira", DataNascimento: day(1995, 12, 30)},
		{Nome: "Lucas Almeida", DataNascimento: day(1998, 7, 19)},
		{Nome: "Fernanda Costa", DataNascimento: day(1989, 11, 5)},
		{Nome: "Roberto Lima", DataNascimento: day(1975, 6, 8)},
		{Nome: "Camila Mendes", DataNascimento: day(1992, 9, 27)},
		{Nome: "Bruno Martins", DataNascimento: day(1997, 2, 14)},
		{Nome: "Juliana Castro", DataNascimento: day(1993, 4, 21)},
	}

	// Person storage ids are needed to reference people from memories, so
	// inserts run sequentially and collect the ids by name.
	pessoaIDs := make(map[string]string, len(pessoas))
	for i := range pessoas {
		inserted, insertErr := pessoaRepo.Insert(ctx, &pessoas[i])
		if insertErr != nil {
			return fmt.Errorf("seeding pessoa %q: %w", pessoas[i].Nome, insertErr)
		}
		pessoaIDs[inserted.Nome] = inserted.ID
	}

	logger.Info("pessoas inserted", slog.Int("count", len(pessoas)))

	memorias := []domain.Memoria{
		{
			Titulo:      "Viagem para Paris",
			Descricao:   "Uma viagem inesquecível para Paris com minha família.",
			Data:        day(2018, 6, 10),
			Emocao:      "Feliz",
			CategoriaID: ref(1),
			PessoaID:    pessoaIDs["Maria Oliveira"],
		},
		{
			Titulo:      "Aniversário da minha mãe",
			Descricao:   "Comemoração do aniversário da minha mãe com toda a família reunida.",
			Data:        day(2022, 10, 5),
			Emocao:      "Feliz",
			CategoriaID: ref(2),
			PessoaID:    pessoaIDs["Fernanda Costa"],
		},
		{
			Titulo:      "Primeiro emprego",
			Descricao:   "Meu primeiro dia de trabalho como engenheiro de software.",
			Data:        day(2020, 2, 3),
			Emocao:      "Empolgado",
			CategoriaID: ref(3),
			PessoaID:    pessoaIDs["Carlos Souza"],
		},
		{
			Titulo:      "Formatura na faculdade",
			Descricao:   "O dia em que me formei na faculdade de Engenharia Civil.",
			Data:        day(2017, 12, 15),
			Emocao:      "Orgulho",
			CategoriaID: ref(4),
			PessoaID:    pessoaIDs["João Silva"],
		},
		{
			Titulo:      "Maratona de São Paulo",
			Descricao:   "Completei minha primeira maratona em São Paulo.",
			Data:        day(2021, 4, 25),
			Emocao:      "Euforia",
			CategoriaID: ref(5),
			PessoaID:    pessoaIDs["Lucas Almeida"],
		},
		{
			Titulo:      "Acampamento com amigos",
			Descricao:   "Um final de semana incrível de acampamento com amigos.",
			Data:        day(2019, 9, 14),
			Emocao:      "Aventura",
			CategoriaID: ref(6),
			PessoaID:    pessoaIDs["Ana Pereira"],
		},
		{
			Titulo:      "Casamento do meu irmão",
			Descricao:   "Dia emocionante no casamento do meu irmão mais velho.",
			Data:        day(2023, 5, 20),
			Emocao:      "Emocionado",
			CategoriaID: ref(7),
			PessoaID:    pessoaIDs["Roberto Lima"],
		},
		{
			Titulo:      "Primeiro violão",
			Descricao:   "O dia em que comprei meu primeiro violão e comecei a aprender música.",
			Data:        day(2015, 11, 8),
			Emocao:      "Nostálgico",
			CategoriaID: ref(9),
			PessoaID:    pessoaIDs["Camila Mendes"],
		},
		{
			Titulo:      "Hackathon de programação",
			Descricao:   "Participei do meu primeiro hackathon e aprendi muito.",
			Data:        day(2022, 3, 12),
			Emocao:      "Animado",
			CategoriaID: ref(10),
			PessoaID:    pessoaIDs["Bruno Martins"],
		},
		{
			Titulo:      "Primeiro jogo de xadrez",
			Descricao:   "Joguei xadrez pela primeira vez e adorei a experiência.",
			Data:        day(2014, 7, 22),
			Emocao:      "Curioso",
			CategoriaID: ref(8),
			PessoaID:    pessoaIDs["Juliana Castro"],
		},
	}

	err = app.FanOut(ctx, seedWorkers, memorias, func(ctx context.Context, m domain.Memoria) error {
		_, insertErr := memoriaRepo.Insert(ctx, &m)
		return insertErr
	})
	if err != nil {
		return fmt.Errorf("seeding memorias: %w", err)
	}

	logger.Info("memorias inserted", slog.Int("count", len(memorias)))

	return nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ref(id int) *int {
	return &id
}
