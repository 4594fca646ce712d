package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/8dcc/godsong-go/constants"
	"github.com/8dcc/godsong-go/lilypond"
	"github.com/8dcc/godsong-go/model"
	"github.com/8dcc/godsong-go/pmx"
	"github.com/8dcc/godsong-go/render"
	"github.com/8dcc/godsong-go/song"
	"github.com/8dcc/godsong-go/util"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves a conversion endpoint",
	Long:  `Serves a JSON endpoint that converts GodSong melodies to LilyPond or PMX.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func newRenderer(dialect string) (render.Renderer, error) {
	switch dialect {
	case "lilypond":
		return lilypond.New(), nil
	case "pmx":
		return pmx.New(), nil
	}
	return nil, fmt.Errorf("unknown dialect: %q", dialect)
}

// HandleConvert is exported so tests can exercise it through httptest.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.ConvertRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		http.Error(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	renderer, err := newRenderer(input.Dialect)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	var buf bytes.Buffer
	dec := song.NewDecoder(util.Flatten(input.Song))
	issues, err := render.Song(dec, renderer, &buf)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	res := model.ConvertResponse{Output: buf.String()}
	for _, issue := range issues {
		res.Warnings = append(res.Warnings, issue.Error())
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
