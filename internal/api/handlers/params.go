package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// BlockIDFromPath читает {blockId} из пути
func BlockIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["blockId"], 10, 64)
}
