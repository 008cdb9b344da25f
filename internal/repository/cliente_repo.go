package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Werneck0live/brhelpers/internal/models"
)

var (
	ErrDuplicateDocumento = errors.New("documento already exists")
	ErrNotFound           = errors.New("cliente not found")
)

const indexDocumento = "uniq_documento"

type ClienteRepository struct {
	coll *mongo.Collection
}

func NewClienteRepository(db *mongo.Database) *ClienteRepository {
	return &ClienteRepository{coll: db.Collection("clientes")}
}

func (r *ClienteRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "documento", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(indexDocumento),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	// índice já existe com outras opções: dropa e recria
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 85 { // IndexOptionsConflict
		if _, dropErr := r.coll.Indexes().DropOne(ctx, indexDocumento); dropErr != nil {
			return fmt.Errorf("drop index %s: %w", indexDocumento, dropErr)
		}
		_, err = r.coll.Indexes().CreateOne(ctx, model)
	}
	return err
}

func (r *ClienteRepository) Create(ctx context.Context, c *models.Cliente) (string, error) {
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return "", mapWriteErr(err)
	}
	id, _ := res.InsertedID.(string) // _id é o documento, sempre string
	return id, nil
}

func (r *ClienteRepository) GetByID(ctx context.Context, id string) (*models.Cliente, error) {
	var c models.Cliente
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClienteRepository) GetAll(ctx context.Context, limit, skip int64) ([]models.Cliente, error) {
	opts := options.Find().SetLimit(limit).SetSkip(skip).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []models.Cliente{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update aplica só os campos presentes no patch.
func (r *ClienteRepository) Update(ctx context.Context, id string, p models.ClientePatch) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Documento != nil {
		set["documento"] = *p.Documento
	}
	if p.TipoDocumento != nil {
		set["tipo_documento"] = *p.TipoDocumento
	}
	if p.Nome != nil {
		set["nome"] = *p.Nome
	}
	if p.Telefone != nil {
		set["telefone"] = *p.Telefone
	}
	if p.DataNascimento != nil {
		set["data_nascimento"] = *p.DataNascimento
	}
	if p.RendaMensal != nil {
		set["renda_mensal"] = *p.RendaMensal
	}

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return mapWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClienteRepository) Replace(ctx context.Context, id string, c *models.Cliente) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, c)
	if err != nil {
		return mapWriteErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// E11000 vira ErrDuplicateDocumento
func mapWriteErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateDocumento
	}
	return err
}
