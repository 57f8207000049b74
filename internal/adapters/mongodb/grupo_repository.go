package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
)

// pessoaRefDoc is the embedded member projection inside a grupo document.
type pessoaRefDoc struct {
	ID       string   `bson:"id"`
	Nome     string   `bson:"nome"`
	Memorias []string `bson:"memorias"`
}

// grupoDoc is the persisted shape of a domain.Grupo.
type grupoDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Nome    string             `bson:"nome"`
	Pessoas []pessoaRefDoc     `bson:"pessoas"`
}

func (d grupoDoc) toDomain() domain.Grupo {
	pessoas := make([]domain.PessoaRef, len(d.Pessoas))
	for i, ref := range d.Pessoas {
		pessoas[i] = domain.PessoaRef{ID: ref.ID, Nome: ref.Nome, Memorias: ref.Memorias}
	}

	return domain.Grupo{
		ID:      d.ID.Hex(),
		Nome:    d.Nome,
		Pessoas: pessoas,
	}
}

func toRefDocs(refs []domain.PessoaRef) []pessoaRefDoc {
	docs := make([]pessoaRefDoc, len(refs))
	for i, ref := range refs {
		docs[i] = pessoaRefDoc{ID: ref.ID, Nome: ref.Nome, Memorias: ref.Memorias}
	}

	return docs
}

// GrupoRepository implements ports.GrupoRepository on MongoDB.
type GrupoRepository struct {
	coll *mongo.Collection
}

// NewGrupoRepository creates a repository bound to the grupos collection.
func NewGrupoRepository(client *Client) *GrupoRepository {
	if client == nil {
		panic("grupo repository requires a mongodb client")
	}

	return &GrupoRepository{coll: client.Database().Collection(collGrupos)}
}

func (r *GrupoRepository) Insert(ctx context.Context, grupo *domain.Grupo) (*domain.Grupo, error) {
	doc := grupoDoc{
		Nome:    grupo.Nome,
		Pessoas: toRefDocs(grupo.Pessoas),
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, mapError(err, "grupo", grupo.Nome)
	}

	created := *grupo
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return &created, nil
}

func (r *GrupoRepository) List(ctx context.Context) ([]domain.Grupo, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, mapError(err, "grupo", "")
	}

	var docs []grupoDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding grupos: %w", err)
	}

	grupos := make([]domain.Grupo, len(docs))
	for i, doc := range docs {
		grupos[i] = doc.toDomain()
	}

	return grupos, nil
}

func (r *GrupoRepository) GetByID(ctx context.Context, id string) (*domain.Grupo, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc grupoDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapError(err, "grupo", id)
	}

	grupo := doc.toDomain()

	return &grupo, nil
}

func (r *GrupoRepository) UpdatePessoas(ctx context.Context, id string, pessoas []domain.PessoaRef) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"pessoas": toRefDocs(pessoas)}},
	)
	if err != nil {
		return mapError(err, "grupo", id)
	}

	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("grupo", id)
	}

	return nil
}
