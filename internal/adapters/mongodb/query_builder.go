package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// buildPropertyPredicate компилирует критерии поиска в предикат Mongo:
// логическое AND только тех клауз, что заданы. Пустой фильтр дает
// предикат, совпадающий со всеми документами.
//
// Санити-чек диапазона цен здесь намеренно не делается - это работа
// валидации, которая выполняется до обращения к хранилищу.
func buildPropertyPredicate(f domain.PropertyFilter) (bson.M, error) {
	clauses := make([]bson.M, 0, 4)

	// Подстрока без регистра. QuoteMeta: пользовательский ввод не должен
	// интерпретироваться как регулярное выражение.
	if f.Name != nil && *f.Name != "" {
		clauses = append(clauses, bson.M{
			"name": primitive.Regex{Pattern: regexp.QuoteMeta(*f.Name), Options: "i"},
		})
	}

	if f.Address != nil && *f.Address != "" {
		clauses = append(clauses, bson.M{
			"address": primitive.Regex{Pattern: regexp.QuoteMeta(*f.Address), Options: "i"},
		})
	}

	if f.MinPrice != nil {
		min, err := decimalToMongo(*f.MinPrice)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, bson.M{"price": bson.M{"$gte": min}})
	}

	if f.MaxPrice != nil {
		max, err := decimalToMongo(*f.MaxPrice)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, bson.M{"price": bson.M{"$lte": max}})
	}

	if len(clauses) == 0 {
		return bson.M{}, nil
	}
	return bson.M{"$and": clauses}, nil
}
