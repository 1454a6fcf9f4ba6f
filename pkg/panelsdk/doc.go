/*
Package panelsdk is the client side of the Pandda admin panel.

# Client vs Session

A Client covers the public endpoints (health checks and login). Login returns
a Session, which carries the bearer token and exposes the record, view and
dialog endpoints:

	client := panelsdk.NewClient("http://localhost:8080")

	session, err := client.Login(ctx, "admin@pandda.com", "master", "master")
	if errors.Is(err, panelsdk.ErrInvalidCredentials) {
		// e-mail, password or role did not match
	}

	clients, err := session.ListClients(ctx)

# Local storage

LocalStorage plays the part of the browser's local storage: a JSON file of
string keys. AuthAdapter keeps the current operator there under
StorageKeyUser as {"id","email","role","name"} and the theme under
StorageKeyTheme as "dark" or "light":

	ls, _ := panelsdk.OpenLocalStorage(path)
	auth := &panelsdk.AuthAdapter{Client: client, Storage: ls}

	if _, err := auth.Login(ctx, email, password, role); err != nil { ... }
	if auth.CanDelete() {
		// show delete actions
	}
	_ = auth.Logout()

# Dialogs

The server owns one active dialog per operator. OpenDialog, Dispatch and
SaveDialog drive it; a failed save returns an *APIError whose Dialog field
holds the state with the inline error, and the dialog stays open.

# Errors

Failed requests return *APIError. It matches the exported sentinels by code,
so errors.Is(err, panelsdk.ErrNotFound) works for any 404 from the panel.
*/
package panelsdk
