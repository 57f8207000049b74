package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// pessoaDoc is the persisted shape of a domain.Pessoa.
type pessoaDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Nome           string             `bson:"nome"`
	DataNascimento time.Time          `bson:"data_nascimento"`
}

func (d pessoaDoc) toDomain() domain.Pessoa {
	return domain.Pessoa{
		ID:             d.ID.Hex(),
		Nome:           d.Nome,
		DataNascimento: d.DataNascimento.UTC(),
	}
}

// PessoaRepository implements ports.PessoaRepository on MongoDB.
type PessoaRepository struct {
	coll *mongo.Collection
}

// NewPessoaRepository creates a repository bound to the pessoas collection.
func NewPessoaRepository(client *Client) *PessoaRepository {
	if client == nil {
		panic("pessoa repository requires a mongodb client")
	}

	return &PessoaRepository{coll: client.Database().Collection(collPessoas)}
}

func (r *PessoaRepository) Insert(ctx context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error) {
	doc := pessoaDoc{
		Nome:           pessoa.Nome,
		DataNascimento: pessoa.DataNascimento,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, mapError(err, "pessoa", pessoa.Nome)
	}

	created := *pessoa
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return &created, nil
}

func (r *PessoaRepository) List(ctx context.Context, page ports.Page) ([]domain.Pessoa, error) {
	opts := options.Find()
	if page.Limit > 0 {
		opts.SetLimit(page.Limit).SetSkip(page.Skip)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mapError(err, "pessoa", "")
	}

	var docs []pessoaDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding pessoas: %w", err)
	}

	pessoas := make([]domain.Pessoa, len(docs))
	for i, doc := range docs {
		pessoas[i] = doc.toDomain()
	}

	return pessoas, nil
}

func (r *PessoaRepository) GetByID(ctx context.Context, id string) (*domain.Pessoa, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc pessoaDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapError(err, "pessoa", id)
	}

	pessoa := doc.toDomain()

	return &pessoa, nil
}

func (r *PessoaRepository) GetByNome(ctx context.Context, nome string) (*domain.Pessoa, error) {
	var doc pessoaDoc
	if err := r.coll.FindOne(ctx, bson.M{"nome": nome}).Decode(&doc); err != nil {
		return nil, mapError(err, "pessoa", nome)
	}

	pessoa := doc.toDomain()

	return &pessoa, nil
}

func (r *PessoaRepository) Update(ctx context.Context, id string, update domain.PessoaUpdate) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if update.Nome != nil {
		set["nome"] = *update.Nome
	}

	if update.DataNascimento != nil {
		set["data_nascimento"] = *update.DataNascimento
	}

	if len(set) == 0 {
		return nil
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return mapError(err, "pessoa", id)
	}

	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("pessoa", id)
	}

	return nil
}

func (r *PessoaRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError(err, "pessoa", id)
	}

	if result.DeletedCount == 0 {
		return domain.NewNotFoundError("pessoa", id)
	}

	return nil
}
