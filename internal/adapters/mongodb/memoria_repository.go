package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// memoriaDoc is the persisted shape of a domain.Memoria. References are
// stored denormalized: categoria_id as the category's numeric id, pessoa_id
// as the person's hex storage id.
type memoriaDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Titulo      string             `bson:"titulo"`
	Descricao   string             `bson:"descricao,omitempty"`
	Data        time.Time          `bson:"data"`
	Emocao      string             `bson:"emocao,omitempty"`
	CategoriaID *int               `bson:"categoria_id,omitempty"`
	PessoaID    string             `bson:"pessoa_id,omitempty"`
}

func (d memoriaDoc) toDomain() domain.Memoria {
	return domain.Memoria{
		ID:          d.ID.Hex(),
		Titulo:      d.Titulo,
		Descricao:   d.Descricao,
		Data:        d.Data.UTC(),
		Emocao:      d.Emocao,
		CategoriaID: d.CategoriaID,
		PessoaID:    d.PessoaID,
	}
}

// MemoriaRepository implements ports.MemoriaRepository on MongoDB.
type MemoriaRepository struct {
	coll *mongo.Collection
}

// NewMemoriaRepository creates a repository bound to the memorias collection.
func NewMemoriaRepository(client *Client) *MemoriaRepository {
	if client == nil {
		panic("memoria repository requires a mongodb client")
	}

	return &MemoriaRepository{coll: client.Database().Collection(collMemorias)}
}

func (r *MemoriaRepository) Insert(ctx context.Context, memoria *domain.Memoria) (*domain.Memoria, error) {
	doc := memoriaDoc{
		Titulo:      memoria.Titulo,
		Descricao:   memoria.Descricao,
		Data:        memoria.Data,
		Emocao:      memoria.Emocao,
		CategoriaID: memoria.CategoriaID,
		PessoaID:    memoria.PessoaID,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, mapError(err, "memoria", memoria.Titulo)
	}

	created := *memoria
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()

	return &created, nil
}

func (r *MemoriaRepository) GetByID(ctx context.Context, id string) (*domain.Memoria, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc memoriaDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapError(err, "memoria", id)
	}

	memoria := doc.toDomain()

	return &memoria, nil
}

func (r *MemoriaRepository) List(ctx context.Context, filter domain.MemoriaFilter, page ports.Page) ([]domain.Memoria, error) {
	opts := options.Find()
	if page.Limit > 0 {
		opts.SetLimit(page.Limit).SetSkip(page.Skip)
	}

	if filter.OrderByDataDesc {
		opts.SetSort(bson.D{{Key: "data", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, mapError(err, "memoria", "")
	}

	var docs []memoriaDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding memorias: %w", err)
	}

	memorias := make([]domain.Memoria, len(docs))
	for i, doc := range docs {
		memorias[i] = doc.toDomain()
	}

	return memorias, nil
}

func (r *MemoriaRepository) Update(ctx context.Context, id string, update domain.MemoriaUpdate) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if update.Titulo != nil {
		set["titulo"] = *update.Titulo
	}

	if update.Descricao != nil {
		set["descricao"] = *update.Descricao
	}

	if update.Data != nil {
		set["data"] = *update.Data
	}

	if update.Emocao != nil {
		set["emocao"] = *update.Emocao
	}

	if update.CategoriaID != nil {
		set["categoria_id"] = *update.CategoriaID
	}

	if update.PessoaID != nil {
		set["pessoa_id"] = *update.PessoaID
	}

	if len(set) == 0 {
		return nil
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return mapError(err, "memoria", id)
	}

	if result.MatchedCount == 0 {
		return domain.NewNotFoundError("memoria", id)
	}

	return nil
}

func (r *MemoriaRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError(err, "memoria", id)
	}

	if result.DeletedCount == 0 {
		return domain.NewNotFoundError("memoria", id)
	}

	return nil
}

func (r *MemoriaRepository) CountByCategoria(ctx context.Context, categoriaID int) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"categoria_id": categoriaID})
	if err != nil {
		return 0, mapError(err, "memoria", "")
	}

	return count, nil
}

func (r *MemoriaRepository) CountByPessoa(ctx context.Context, pessoaID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"pessoa_id": pessoaID})
	if err != nil {
		return 0, mapError(err, "memoria", "")
	}

	return count, nil
}

// TotaisPorCategoria groups memories by categoria_id and counts them,
// largest groups first. Memories without a category land in the nil bucket.
func (r *MemoriaRepository) TotaisPorCategoria(ctx context.Context) ([]domain.TotalPorCategoria, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$categoria_id"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mapError(err, "memoria", "")
	}

	var rows []struct {
		CategoriaID *int  `bson:"_id"`
		Total       int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decoding aggregation: %w", err)
	}

	totais := make([]domain.TotalPorCategoria, len(rows))
	for i, row := range rows {
		totais[i] = domain.TotalPorCategoria{
			CategoriaID:   row.CategoriaID,
			TotalMemorias: row.Total,
		}
	}

	return totais, nil
}

// buildFilter translates a domain.MemoriaFilter into a Mongo query document.
func buildFilter(filter domain.MemoriaFilter) bson.M {
	query := bson.M{}

	if filter.CategoriaID != nil {
		query["categoria_id"] = *filter.CategoriaID
	}

	if filter.PessoaID != "" {
		query["pessoa_id"] = filter.PessoaID
	}

	if filter.Emocao != "" {
		query["emocao"] = filter.Emocao
	}

	if filter.DataInicio != nil || filter.DataFim != nil {
		dateRange := bson.M{}
		if filter.DataInicio != nil {
			dateRange["$gte"] = *filter.DataInicio
		}

		if filter.DataFim != nil {
			dateRange["$lte"] = *filter.DataFim
		}

		query["data"] = dateRange
	}

	if filter.TituloContem != "" {
		query["titulo"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.TituloContem),
			Options: "i",
		}
	}

	return query
}
