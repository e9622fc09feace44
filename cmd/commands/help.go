package commands

import "fmt"

const help = `saukstas - recipe blog backend

usage:
  saukstas run <config.yml>           start the HTTP server
  saukstas setup-admin <config.yml>   create the admin account (needs ADMIN_SETUP_KEY)
  saukstas version                    print the version
  saukstas help                       print this message
`

func HandleHelp(_ []string) {
	fmt.Print(help) //nolint
}
