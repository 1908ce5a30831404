package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voltkart/storefront-backend/api/responses"
	"github.com/voltkart/storefront-backend/internal/catalog"
	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
	"github.com/voltkart/storefront-backend/pkg/logger"
)

const featuredCount = 3

// CatalogList handles product browsing with category and sort query params.
func CatalogList(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products := repo.List(catalog.ListInput{
			Category: r.URL.Query().Get("category"),
			SortBy:   r.URL.Query().Get("sort"),
		})
		responses.WriteSuccess(w, products)
	}
}

// CatalogDetail returns a single product by id.
func CatalogDetail(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		product, ok := repo.FindByID(productID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CatalogCategories returns the sidebar category buckets with counts.
func CatalogCategories(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, repo.CategoryCounts())
	}
}

// CatalogFeatured returns the home screen's featured picks.
func CatalogFeatured(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, repo.Featured(featuredCount))
	}
}
