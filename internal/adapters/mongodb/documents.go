package mongodb

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// Имена коллекций. Две независимые коллекции, соединяются только
// на уровне приложения, без денормализации.
const (
	propertiesCollection = "Properties"
	ownersCollection     = "Owners"
)

// propertyDoc - документ коллекции Properties. Цены хранятся как
// Decimal128: float64 для денег не используется нигде.
type propertyDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Slug         string               `bson:"slug"`
	Name         string               `bson:"name"`
	Address      string               `bson:"address"`
	Price        primitive.Decimal128 `bson:"price"`
	CodeInternal string               `bson:"codeInternal"`
	Year         int                  `bson:"year"`
	OwnerID      string               `bson:"ownerId"`
	Images       []imageDoc           `bson:"images,omitempty"`
	Traces       []traceDoc           `bson:"traces,omitempty"`
}

type imageDoc struct {
	ID      string `bson:"idPropertyImage"`
	File    string `bson:"file"`
	Enabled bool   `bson:"enabled"`
}

type traceDoc struct {
	ID       string               `bson:"idPropertyTrace"`
	DateSale time.Time            `bson:"dateSale"`
	Name     string               `bson:"name"`
	Value    primitive.Decimal128 `bson:"value"`
	Tax      primitive.Decimal128 `bson:"tax"`
}

// ownerDoc - документ коллекции Owners. Идентификатор владельца -
// бизнесовый строковый ключ вида "OWN-001", он же _id.
type ownerDoc struct {
	ID       string     `bson:"_id"`
	Name     string     `bson:"name"`
	Address  string     `bson:"address"`
	Photo    string     `bson:"photo,omitempty"`
	Birthday *time.Time `bson:"birthday,omitempty"`
}

// decimalToMongo конвертирует точное десятичное значение в Decimal128
// без прохода через float.
func decimalToMongo(d decimal.Decimal) (primitive.Decimal128, error) {
	out, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("convert decimal %q to Decimal128: %w", d.String(), err)
	}
	return out, nil
}

func decimalFromMongo(d primitive.Decimal128) (decimal.Decimal, error) {
	out, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("convert Decimal128 %q to decimal: %w", d.String(), err)
	}
	return out, nil
}

func (d *propertyDoc) toDomain() (domain.Property, error) {
	price, err := decimalFromMongo(d.Price)
	if err != nil {
		return domain.Property{}, err
	}

	p := domain.Property{
		ID:           d.ID.Hex(),
		Slug:         d.Slug,
		Name:         d.Name,
		Address:      d.Address,
		Price:        price,
		CodeInternal: d.CodeInternal,
		Year:         d.Year,
		OwnerID:      d.OwnerID,
	}

	if len(d.Images) > 0 {
		p.Images = make([]domain.PropertyImage, len(d.Images))
		for i, img := range d.Images {
			p.Images[i] = domain.PropertyImage{ID: img.ID, File: img.File, Enabled: img.Enabled}
		}
	}

	if len(d.Traces) > 0 {
		p.Traces = make([]domain.PropertyTrace, len(d.Traces))
		for i, t := range d.Traces {
			value, err := decimalFromMongo(t.Value)
			if err != nil {
				return domain.Property{}, err
			}
			tax, err := decimalFromMongo(t.Tax)
			if err != nil {
				return domain.Property{}, err
			}
			p.Traces[i] = domain.PropertyTrace{
				ID:       t.ID,
				DateSale: t.DateSale,
				Name:     t.Name,
				Value:    value,
				Tax:      tax,
			}
		}
	}

	return p, nil
}

func fromDomainProperty(p *domain.Property) (*propertyDoc, error) {
	price, err := decimalToMongo(p.Price)
	if err != nil {
		return nil, err
	}

	doc := &propertyDoc{
		Slug:         p.Slug,
		Name:         p.Name,
		Address:      p.Address,
		Price:        price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		OwnerID:      p.OwnerID,
	}

	// Пустой ID означает вставку: Mongo сам назначит ObjectID.
	if p.ID != "" {
		objID, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid property id %q: %w", p.ID, err)
		}
		doc.ID = objID
	}

	if len(p.Images) > 0 {
		doc.Images = make([]imageDoc, len(p.Images))
		for i, img := range p.Images {
			doc.Images[i] = imageDoc{ID: img.ID, File: img.File, Enabled: img.Enabled}
		}
	}

	if len(p.Traces) > 0 {
		doc.Traces = make([]traceDoc, len(p.Traces))
		for i, t := range p.Traces {
			value, err := decimalToMongo(t.Value)
			if err != nil {
				return nil, err
			}
			tax, err := decimalToMongo(t.Tax)
			if err != nil {
				return nil, err
			}
			doc.Traces[i] = traceDoc{
				ID:       t.ID,
				DateSale: t.DateSale,
				Name:     t.Name,
				Value:    value,
				Tax:      tax,
			}
		}
	}

	return doc, nil
}

func (d *ownerDoc) toDomain() domain.Owner {
	return domain.Owner{
		ID:       d.ID,
		Name:     d.Name,
		Address:  d.Address,
		Photo:    d.Photo,
		Birthday: d.Birthday,
	}
}
