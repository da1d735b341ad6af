package core

import (
	"time"
)

// User is an account row. Passwords are stored as bcrypt hashes,
// never in plaintext.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;auto_increment"`
	Username     string `json:"username" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"type:text;not null"`
	IsAdmin      bool   `json:"isadmin" gorm:"type:boolean;default:false"`
}

// Message is a single chat room message
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey;auto_increment"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// CharacterSheet is the per-user character record.
// Field names are part of the wire contract and stay in Portuguese.
type CharacterSheet struct {
	ID           uint   `json:"id" gorm:"primaryKey;auto_increment"`
	UserID       uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	User         User   `json:"-" gorm:"foreignKey:UserID"`
	Nome         string `json:"nome" gorm:"type:text"`
	Classe       string `json:"classe" gorm:"type:text"`
	Raca         string `json:"raca" gorm:"type:text"`
	Descricao    string `json:"descricao" gorm:"type:text"`
	Nivel        int    `json:"nivel" gorm:"type:integer;default:1"`
	Forca        int    `json:"forca" gorm:"type:integer;default:10"`
	Velocidade   int    `json:"velocidade" gorm:"type:integer;default:10"`
	Inteligencia int    `json:"inteligencia" gorm:"type:integer;default:10"`
	Mana         int    `json:"mana" gorm:"type:integer;default:10"`
}

// StoryID is the fixed primary key of the singleton story row
const StoryID = 1

// Story is the shared narrative. Exactly one row exists, with ID StoryID.
type Story struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Conteudo string `json:"conteudo" gorm:"type:text"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AssistantMessage is one turn of a user's conversation with the AI
// assistant. Turns are created in pairs: the user turn, then the
// assistant turn once the model answers.
type AssistantMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey;auto_increment"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Role      string    `json:"role" gorm:"type:text;not null;check:role IN ('user', 'assistant')"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// ChatMessage is one entry of a chat-completion transcript sent to the
// external model endpoint.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HistoryRecord is one room history entry joined with the sender's
// username
type HistoryRecord struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// SheetRecord is one character sheet joined with the owning username,
// for the administrative listing
type SheetRecord struct {
	Username     string `json:"username"`
	Nome         string `json:"nome"`
	Classe       string `json:"classe"`
	Raca         string `json:"raca"`
	Nivel        int    `json:"nivel"`
	Forca        int    `json:"forca"`
	Velocidade   int    `json:"velocidade"`
	Inteligencia int    `json:"inteligencia"`
	Mana         int    `json:"mana"`
	Descricao    string `json:"descricao"`
}
