package mongodb

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// categoriaDoc is the persisted shape of a domain.Categoria.
type categoriaDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CategoriaID int                `bson:"categoria_id"`
	Nome        string             `bson:"nome"`
}

func (d categoriaDoc) toDomain() domain.Categoria {
	return domain.Categoria{
		ID:          d.ID.Hex(),
		CategoriaID: d.CategoriaID,
		Nome:        d.Nome,
	}
}

// CategoriaRepository implements ports.CategoriaRepository on MongoDB.
type CategoriaRepository struct {
	coll *mongo.Collection
}

// NewCategoriaRepository creates a repository bound to the categorias collection.
func NewCategoriaRepository(client *Client) *CategoriaRepository {
	if client == nil {
		panic("categoria repository requires a mongodb client")
	}

	return &CategoriaRepository{coll: client.Database().Collection(collCategorias)}
}

func (r *CategoriaRepository) Insert(ctx context.Context, categoria *domain.Categoria) (*domain.Categoria, error) {
	doc := categoriaDoc{
		CategoriaID: categoria.CategoriaID,
		Nome:        categoria.Nome,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, mapError(err, "categoria", strconv.Itoa(categoria.CategoriaID))
	}

	created := *categoria
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return &created, nil
}

func (r *CategoriaRepository) List(ctx context.Context, page ports.Page) ([]domain.Categoria, error) {
	opts := options.Find()
	if page.Limit > 0 {
		opts.SetLimit(page.Limit).SetSkip(page.Skip)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mapError(err, "categoria", "")
	}

	var docs []categoriaDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding categorias: %w", err)
	}

	categorias := make([]domain.Categoria, len(docs))
	for i, doc := range docs {
		categorias[i] = doc.toDomain()
	}

	return categorias, nil
}

func (r *CategoriaRepository) GetByID(ctx context.Context, id string) (*domain.Categoria, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc categoriaDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapError(err, "categoria", id)
	}

	categoria := doc.toDomain()

	return &categoria, nil
}

func (r *CategoriaRepository) GetByCategoriaID(ctx context.Context, categoriaID int) (*domain.Categoria, error) {
	var doc categoriaDoc
	if err := r.coll.FindOne(ctx, bson.M{"categoria_id": categoriaID}).Decode(&doc); err != nil {
		return nil, mapError(err, "categoria", strconv.Itoa(categoriaID))
	}

	categoria := doc.toDomain()

	return &categoria, nil
}

func (r *CategoriaRepository) Update(ctx context.Context, id string, update domain.CategoriaUpdate) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if update.Nome != nil {
		set["nome"] = *update.Nome
	}

	if update.CategoriaID != nil {
		set["categoria_id"] = *update.CategoriaID
	}

	if len(set) == 0 {
		return nil
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return mapError(err, "categoria", id)
	}

	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("categoria", id)
	}

	return nil
}

func (r *CategoriaRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError(err, "categoria", id)
	}

	if result.DeletedCount == 0 {
		return domain.NewNotFoundError("categoria", id)
	}

	return nil
}
