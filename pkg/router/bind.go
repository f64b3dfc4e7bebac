package router

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/hive-community/backend/pkg/errorx"
)

// bindRequest fills the request struct from query parameters for GET
// requests, or from the JSON body otherwise. Query binding supports string,
// int and bool fields tagged with json names.
func bindRequest(r *http.Request, req any) error {
	switch r.Method {
	case http.MethodGet, http.MethodDelete:
		return bindQuery(r, req)
	default:
		return bindBody(r, req)
	}
}

func bindQuery(r *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		name := t.Field(i).Tag.Get("json")
		if name == "" || name == "-" {
			continue
		}

		queryVal := r.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(queryVal)

		case reflect.Int:
			val, err := strconv.Atoi(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid value of %s", name)
			}
			v.Field(i).SetInt(int64(val))

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid value of %s", name)
			}
			v.Field(i).SetBool(val)
		}
	}

	return nil
}

func bindBody(r *http.Request, req any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return errorx.New(errorx.BadRequest, "Cannot read the request body")
	}

	if len(b) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, req); err != nil {
		return errorx.New(errorx.BadRequest, "Cannot parse the request body")
	}

	return nil
}
