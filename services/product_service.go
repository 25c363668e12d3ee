package services

import (
	"MenuPlus/models"
	"MenuPlus/utils"
	"net/http"

	"github.com/openfoodfacts/openfoodfacts-go"
)

// ProductService checks packaged products against a dietary profile using
// OpenFoodFacts ingredient data and the local classifier.
type ProductService struct {
	Client openfoodfacts.Client
}

// NewProductService initializes a new instance of ProductService
func NewProductService() *ProductService {
	return &ProductService{
		Client: openfoodfacts.NewClient("world", "", ""),
	}
}

// ProductCheck is a product's ingredient data plus its classification against
// the caller's dietary profile.
type ProductCheck struct {
	Barcode         string         `json:"barcode"`
	Name            string         `json:"name"`
	IngredientsText string         `json:"ingredientsText"`
	IngredientsTags []string       `json:"ingredientsTags"`
	Classification  Classification `json:"classification"`
}

// CheckProduct fetches a product by barcode and classifies its ingredients.
// Ingredient tags and the free-text ingredient list are both matched, since
// either may be missing for sparse products.
func (s *ProductService) CheckProduct(barcode string, profile *models.Profile) (*ProductCheck, error) {
	product, err := s.Client.Product(barcode)
	if err != nil {
		return nil, utils.NewCustomError(http.StatusNotFound, "Product not found")
	}
	if product.ProductName == "" && product.IngredientsText == "" {
		return nil, utils.NewCustomError(http.StatusNotFound, "Product has no usable data")
	}

	ingredients := append([]string{}, product.IngredientsTags...)
	if product.IngredientsText != "" {
		ingredients = append(ingredients, product.IngredientsText)
	}

	return &ProductCheck{
		Barcode:         barcode,
		Name:            product.ProductName,
		IngredientsText: product.IngredientsText,
		IngredientsTags: product.IngredientsTags,
		Classification:  ClassifyIngredients(ingredients, profile),
	}, nil
}
