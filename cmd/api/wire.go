//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tavernarpg/taverna/x/account"
	"github.com/tavernarpg/taverna/x/assistant"
	"github.com/tavernarpg/taverna/x/chat"
	"github.com/tavernarpg/taverna/x/sheet"
	"github.com/tavernarpg/taverna/x/socket"
	"github.com/tavernarpg/taverna/x/story"
	"github.com/tavernarpg/taverna/x/util"
)

var accountProvider = wire.NewSet(account.NewHandler, account.NewService, account.NewRepository)
var chatProvider = wire.NewSet(chat.NewHandler, chat.NewService, chat.NewRepository)
var sheetProvider = wire.NewSet(sheet.NewHandler, sheet.NewService, sheet.NewRepository, account.NewService, account.NewRepository)
var storyProvider = wire.NewSet(story.NewHandler, story.NewService, story.NewRepository)
var assistantProvider = wire.NewSet(assistant.NewHandler, assistant.NewService, assistant.NewRepository, assistant.NewClient, account.NewService, account.NewRepository)

func SetupAccountService(db *gorm.DB) account.Service {
	wire.Build(account.NewService, account.NewRepository)
	return nil
}

func SetupAccountHandler(db *gorm.DB) account.Handler {
	wire.Build(accountProvider)
	return nil
}

func SetupChatService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) chat.Service {
	wire.Build(chat.NewService, chat.NewRepository)
	return nil
}

func SetupChatHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) chat.Handler {
	wire.Build(chatProvider)
	return nil
}

func SetupSocketManager(rdb *redis.Client) socket.Manager {
	wire.Build(socket.NewManager)
	return nil
}

func SetupSocketHandler(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, manager socket.Manager) socket.Handler {
	wire.Build(socket.NewHandler, chat.NewService, chat.NewRepository)
	return nil
}

func SetupSheetService(db *gorm.DB) sheet.Service {
	wire.Build(sheet.NewService, sheet.NewRepository, account.NewService, account.NewRepository)
	return nil
}

func SetupSheetHandler(db *gorm.DB) sheet.Handler {
	wire.Build(sheetProvider)
	return nil
}

func SetupStoryService(db *gorm.DB) story.Service {
	wire.Build(story.NewService, story.NewRepository)
	return nil
}

func SetupStoryHandler(db *gorm.DB) story.Handler {
	wire.Build(storyProvider)
	return nil
}

func SetupAssistantHandler(db *gorm.DB, config util.Config) assistant.Handler {
	wire.Build(assistantProvider)
	return nil
}
