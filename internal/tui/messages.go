package tui

import "github.com/ovoronin/go-issue-tracker/models"

type authDoneMsg struct {
	user models.User
	err  error
}

type collectionsLoadedMsg struct {
	err error
}

type entitySavedMsg struct {
	err error
}

type entityDeletedMsg struct {
	err error
}

type notificationsChangedMsg struct {
	err error
}

type attachmentsChangedMsg struct {
	failed int
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
