package handlers

import (
	"net/http"
)

func Chains(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, deps.Catalog.SortedChains(), http.StatusOK)
}

func Assets(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, deps.Catalog.SortedAssets(), http.StatusOK)
}
