package commands

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/winner-security/shift-scheduler/internal/client"
	"github.com/winner-security/shift-scheduler/internal/session"
)

// AppContext holds the dependencies shared across all commands.
type AppContext struct {
	Ctx             context.Context
	Client          *client.Client
	Resolver        *session.Resolver
	Credentials     *Credentials
	CredentialsPath string
	Logger          zerolog.Logger
	Out             io.Writer
}

// Init wires a client and resolver around creds. Commands are built before
// flags are parsed, so they hold the AppContext and read it at run time.
func (app *AppContext) Init(ctx context.Context, creds *Credentials, path string, out io.Writer, log zerolog.Logger, opts ...client.Option) {
	c := client.New(creds.Server, append([]client.Option{client.WithToken(creds.Token)}, opts...)...)

	app.Ctx = ctx
	app.Client = c
	app.Resolver = session.New(c, log)
	app.Credentials = creds
	app.CredentialsPath = path
	app.Logger = log
	app.Out = out
}

// persist stores the client's current token.
func (app *AppContext) persist(username string) error {
	app.Credentials.Token = app.Client.Token()
	app.Credentials.Username = username
	return SaveCredentials(app.CredentialsPath, app.Credentials)
}
