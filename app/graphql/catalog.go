// Package graphql exposes the product catalogue as a read-only GraphQL
// schema backed by the product and category services.
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/app/services"
	gql "github.com/shashiranjanraj/backoffice/pkg/graphql"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

// Schema builds the catalogue schema:
//
//	products(page, perPage, name), product(id), productBySlug(slug), deals
//	categories(page, perPage, name), category(id), categoryBySlug(slug)
func Schema(products *services.ProductService, categories *services.CategoryService) (graphql.Schema, error) {
	categoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if c := asCategory(p.Source); c != nil {
						return c.ID, nil
					}
					return nil, nil
				},
			},
			"name":     &graphql.Field{Type: graphql.String},
			"slug":     &graphql.Field{Type: graphql.String},
			"imageUrl": &graphql.Field{Type: graphql.String},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			// id lives on the embedded Base, which the default resolver does not walk.
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := asProduct(p.Source); pr != nil {
						return pr.ID, nil
					}
					return nil, nil
				},
			},
			"name":        &graphql.Field{Type: graphql.String},
			"slug":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"imageUrls":   &graphql.Field{Type: graphql.NewList(graphql.String)},
			"categoryId":  &graphql.Field{Type: graphql.String},
			"basePrice": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := asProduct(p.Source); pr != nil {
						return toFloat(pr.BasePrice), nil
					}
					return nil, nil
				},
			},
			"discountPercentage": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr := asProduct(p.Source)
					if pr == nil || !pr.DiscountPercentage.Valid {
						return nil, nil
					}
					return toFloat(pr.DiscountPercentage.Decimal), nil
				},
			},
			"category": &graphql.Field{
				Type: categoryType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pr := asProduct(p.Source); pr != nil && pr.Category != nil {
						return pr.Category, nil
					}
					return nil, nil
				},
			},
		},
	})

	// products on Category refers back to productType.
	categoryType.AddFieldConfig("products", &graphql.Field{
		Type: graphql.NewList(productType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if c := asCategory(p.Source); c != nil {
				return c.Products, nil
			}
			return nil, nil
		},
	})

	listArgs := graphql.FieldConfigArgument{
		"page":    &graphql.ArgumentConfig{Type: graphql.Int},
		"perPage": &graphql.ArgumentConfig{Type: graphql.Int},
		"name":    &graphql.ArgumentConfig{Type: graphql.String},
	}
	idArg := graphql.FieldConfigArgument{"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}}
	slugArg := graphql.FieldConfigArgument{"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					items, _, err := products.FindAll(p.Context, listQuery(p.Args))
					return items, err
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return products.FindOne(p.Context, p.Args["id"].(string))
				},
			},
			"productBySlug": &graphql.Field{
				Type: productType,
				Args: slugArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return products.FindBySlug(p.Context, p.Args["slug"].(string))
				},
			},
			"deals": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return products.FindDiscounted(p.Context)
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(categoryType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					items, _, err := categories.FindAll(p.Context, listQuery(p.Args))
					return items, err
				},
			},
			"category": &graphql.Field{
				Type: categoryType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categories.FindOne(p.Context, p.Args["id"].(string))
				},
			},
			"categoryBySlug": &graphql.Field{
				Type: categoryType,
				Args: slugArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categories.FindBySlug(p.Context, p.Args["slug"].(string))
				},
			},
		},
	})

	return gql.NewSchema(query)
}

func listQuery(args map[string]interface{}) repositories.ListQuery {
	var q repositories.ListQuery
	if v, ok := args["page"].(int); ok {
		q.Page.Page = v
	}
	if v, ok := args["perPage"].(int); ok {
		q.Page.PerPage = v
	}
	if v, ok := args["name"].(string); ok {
		q.Name = v
	}
	if !q.Page.Enabled() {
		q.Page = orm.Page{}
	}
	return q
}

func asProduct(src interface{}) *models.Product {
	switch v := src.(type) {
	case *models.Product:
		return v
	case models.Product:
		return &v
	}
	return nil
}

func asCategory(src interface{}) *models.Category {
	switch v := src.(type) {
	case *models.Category:
		return v
	case models.Category:
		return &v
	}
	return nil
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
