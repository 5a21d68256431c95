package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	currency "github.com/malusev998/nbp-rates"
)

type (
	mongoStorage struct {
		ctx        context.Context
		client     *mongo.Client
		collection *mongo.Collection
	}

	mongoRate struct {
		ID            primitive.ObjectID   `bson:"_id,omitempty"`
		ISO           string               `bson:"iso"`
		CurrencyName  string               `bson:"currencyName"`
		Rate          primitive.Decimal128 `bson:"rate"`
		EffectiveDate string               `bson:"effectiveDate"`
		CreatedAt     time.Time            `bson:"createdAt"`
	}
)

func NewMongoStorage(config MongoDBConfig) (currency.Storage, error) {
	ctx := contextOrBackground(config.Cxt)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))

	if err != nil {
		return nil, err
	}

	st := mongoStorage{
		ctx:        ctx,
		client:     client,
		collection: client.Database(config.Database).Collection(config.Collection),
	}

	if config.Migrate {
		if err := st.Migrate(); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
	}

	return st, nil
}

func (m mongoStorage) Store(rates []currency.Rate) ([]currency.RateWithID, error) {
	if len(rates) == 0 {
		return []currency.RateWithID{}, nil
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	documents := make([]interface{}, 0, len(rates))

	for _, rate := range rates {
		value, err := primitive.ParseDecimal128(rate.Rate.String())

		if err != nil {
			return nil, err
		}

		documents = append(documents, mongoRate{
			ISO:           rate.ISO,
			CurrencyName:  rate.CurrencyName,
			Rate:          value,
			EffectiveDate: rate.Date,
			CreatedAt:     now,
		})
	}

	result, err := m.collection.InsertMany(m.ctx, documents)

	if err != nil {
		return nil, err
	}

	stored := make([]currency.RateWithID, 0, len(rates))

	for i, rate := range rates {
		stored = append(stored, currency.RateWithID{
			Rate:      rate,
			ID:        result.InsertedIDs[i],
			CreatedAt: now,
		})
	}

	return stored, nil
}

func (m mongoStorage) Get(iso, dateFrom, dateTo string, page, perPage int64) ([]currency.RateWithID, error) {
	filter := bson.M{
		"iso": iso,
		"effectiveDate": bson.M{
			"$gte": dateFrom,
			"$lte": dateTo,
		},
	}

	skip := (page - 1) * perPage
	cursor, err := m.collection.Find(m.ctx, filter, options.Find().
		SetSort(bson.D{{Key: "effectiveDate", Value: 1}}).
		SetSkip(skip).
		SetLimit(perPage),
	)

	if err != nil {
		return nil, err
	}

	defer cursor.Close(m.ctx)

	rates := make([]currency.RateWithID, 0, perPage)

	for cursor.Next(m.ctx) {
		var doc mongoRate

		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}

		value, err := decimal.NewFromString(doc.Rate.String())

		if err != nil {
			return nil, err
		}

		rates = append(rates, currency.RateWithID{
			Rate: currency.Rate{
				ISO:          doc.ISO,
				CurrencyName: doc.CurrencyName,
				Rate:         value,
				Date:         doc.EffectiveDate,
			},
			ID:        doc.ID,
			CreatedAt: doc.CreatedAt,
		})
	}

	return rates, cursor.Err()
}

func (m mongoStorage) Migrate() error {
	_, err := m.collection.Indexes().CreateOne(m.ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "iso", Value: 1},
			{Key: "effectiveDate", Value: 1},
		},
	})

	return err
}

func (m mongoStorage) Drop() error {
	return m.collection.Drop(m.ctx)
}

func (m mongoStorage) Close() error {
	return m.client.Disconnect(m.ctx)
}

func (m mongoStorage) GetStorageProviderName() string {
	return string(MongoDB)
}
