package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httputils "github.com/twitsprout/tools/http"
)

// Handler mounts all the handlers at the appropriate routes and adds any required middleware.
func (h *Handler) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(httputils.TimeoutMiddleware(1 * time.Minute))
	r.Use(httputils.RequestIDMiddleware)
	r.Use(httputils.RealIPMiddleware)
	r.Use(httputils.LoggingMiddleware(h.Logger))
	r.Use(httputils.RecoverMiddleware(h.Logger, httputils.InternalServerErrorHandler(h.Logger)))
	r.Use(httputils.MaxConnectionsMiddleware(5000, httputils.ServiceUnavailableHandler(h.Logger)))
	r.Use(httputils.ConcurrentLimitMiddleware(250, httputils.ServiceUnavailableHandler(h.Logger)))

	r.MethodNotAllowedHandler = httputils.MethodNotAllowedHandler(h.Logger)
	r.NotFoundHandler = httputils.NotFoundHandler(h.Logger)

	versionHandler := httputils.VersionHandler(h.AppName, h.Version, h.Logger)
	r.Methods("GET").Path("/").Name("root").Handler(versionHandler)
	r.Methods("GET").Path("/version").Name("version").Handler(versionHandler)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Routes reachable without a session: sign-in flows, public share-link
	// landings and invite previews.
	v1.Methods("POST").Path("/session/signin").Name("sign_in").HandlerFunc(h.SignIn)
	v1.Methods("POST").Path("/session/signup").Name("sign_up").HandlerFunc(h.SignUp)
	v1.Methods("GET").Path("/session/oauth_url").Name("oauth_url").HandlerFunc(h.OAuthURL)
	v1.Methods("GET").Path("/session/oauth/callback").Name("oauth_callback").HandlerFunc(h.OAuthCallback)
	v1.Methods("GET").Path("/public/albums/{id}").Name("public_album").HandlerFunc(h.PublicAlbum)
	v1.Methods("GET").Path("/invites/{token}").Name("invite_preview").HandlerFunc(h.InvitePreview)
	v1.Methods("GET").Path("/family/invites/{token}").Name("family_invite_preview").HandlerFunc(h.FamilyInvitePreview)

	// Everything else requires a signed-in session.
	authed := v1.NewRoute().Subrouter()
	authed.Use(h.requireSession)

	authed.Methods("GET").Path("/session").Name("current_user").HandlerFunc(h.CurrentUser)
	authed.Methods("DELETE").Path("/session").Name("sign_out").HandlerFunc(h.SignOut)

	authed.Methods("GET").Path("/gallery").Name("gallery").HandlerFunc(h.Gallery)
	authed.Methods("GET").Path("/shared").Name("shared_albums").HandlerFunc(h.SharedAlbums)

	authed.Methods("POST").Path("/albums").Name("create_album").HandlerFunc(h.CreateAlbum)
	authed.Methods("GET").Path("/albums/{id}").Name("album_detail").HandlerFunc(h.AlbumDetail)
	authed.Methods("PATCH").Path("/albums/{id}").Name("update_album").HandlerFunc(h.UpdateAlbum)
	authed.Methods("DELETE").Path("/albums/{id}").Name("delete_album").HandlerFunc(h.DeleteAlbum)
	authed.Methods("POST").Path("/albums/{id}/media").Name("add_album_media").HandlerFunc(h.AddAlbumMedia)
	authed.Methods("DELETE").Path("/albums/{id}/media/{mediaID}").Name("remove_album_media").HandlerFunc(h.RemoveAlbumMedia)
	authed.Methods("GET").Path("/albums/{id}/book").Name("book_session").HandlerFunc(h.BookSession)

	authed.Methods("POST").Path("/folders").Name("create_folder").HandlerFunc(h.CreateFolder)
	authed.Methods("DELETE").Path("/folders/{id}").Name("delete_folder").HandlerFunc(h.DeleteFolder)

	authed.Methods("GET").Path("/media").Name("list_media").HandlerFunc(h.ListMedia)
	authed.Methods("DELETE").Path("/media/{id}").Name("delete_media").HandlerFunc(h.DeleteMedia)
	authed.Methods("POST").Path("/uploads").Name("upload").HandlerFunc(h.Upload)

	authed.Methods("GET").Path("/albums/{id}/sharing").Name("sharing").HandlerFunc(h.Sharing)
	authed.Methods("PUT").Path("/albums/{id}/visibility").Name("set_visibility").HandlerFunc(h.SetVisibility)
	authed.Methods("POST").Path("/albums/{id}/sharing/copy_link").Name("copy_share_link").HandlerFunc(h.CopyShareLink)
	authed.Methods("POST").Path("/albums/{id}/invites").Name("create_invite").HandlerFunc(h.CreateInvite)
	authed.Methods("POST").Path("/albums/{id}/invites/{inviteID}/revoke").Name("revoke_invite").HandlerFunc(h.RevokeInvite)
	authed.Methods("POST").Path("/albums/{id}/invites/{inviteID}/copy_link").Name("copy_invite_link").HandlerFunc(h.CopyInviteLink)
	authed.Methods("PATCH").Path("/albums/{id}/collaborators/{userID}").Name("update_collaborator").HandlerFunc(h.UpdateCollaborator)
	authed.Methods("DELETE").Path("/albums/{id}/collaborators/{userID}").Name("remove_collaborator").HandlerFunc(h.RemoveCollaborator)
	authed.Methods("POST").Path("/invites/{token}/accept").Name("accept_invite").HandlerFunc(h.AcceptInvite)

	authed.Methods("GET").Path("/family").Name("family").HandlerFunc(h.Family)
	authed.Methods("POST").Path("/family").Name("invite_family").HandlerFunc(h.InviteFamily)
	authed.Methods("PATCH").Path("/family/{id}").Name("update_family_member").HandlerFunc(h.UpdateFamilyMember)
	authed.Methods("DELETE").Path("/family/{id}").Name("remove_family_member").HandlerFunc(h.RemoveFamilyMember)
	authed.Methods("POST").Path("/family/invites/{token}/accept").Name("accept_family_invite").HandlerFunc(h.AcceptFamilyInvite)

	h.router = r
	return r
}

func pathVar(r *http.Request, key string) string {
	return mux.Vars(r)[key]
}

func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.Session.User(); !ok {
			_ = httputils.WriteJSONError(w, r.URL.Query(), "not signed in", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
