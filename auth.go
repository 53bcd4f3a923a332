package main

import (
	"crypto/subtle"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"
)

func basicAuth(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		user, password, ok := r.BasicAuth()
		if ok &&
			subtle.ConstantTimeCompare([]byte(user), []byte(viper.GetString("security_user_name"))) == 1 &&
			subtle.ConstantTimeCompare([]byte(password), []byte(viper.GetString("security_user_password"))) == 1 {
			h(w, r, ps)
			return
		}

		w.Header().Set("WWW-Authenticate", "Basic realm=Restricted")
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
}
