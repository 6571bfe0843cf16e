// Command roomtoken mints a LiveKit join token for a student, with the
// profile metadata the agent binds on. Useful for exercising a session
// without the full backend issuing tokens.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/livekit/protocol/auth"
)

type studentMetadata struct {
	ID             int    `json:"id"`
	Name           string `json:"name,omitempty"`
	CEFRLevel      string `json:"cefr_level,omitempty"`
	NativeLanguage string `json:"native_language,omitempty"`
}

func main() {
	apiKey := flag.String("api-key", "", "LiveKit API key")
	apiSecret := flag.String("api-secret", "", "LiveKit API secret")
	room := flag.String("room", "", "Room name (carries the voice call id)")
	identity := flag.String("identity", "student", "Participant identity")
	studentID := flag.Int("student-id", 0, "Student id embedded in the metadata")
	name := flag.String("name", "", "Student name")
	level := flag.String("level", "", "CEFR level (A1..C2)")
	language := flag.String("language", "", "Student native language")
	validity := flag.Duration("valid-for", 2*time.Hour, "Token validity")
	flag.Parse()

	if *apiKey == "" || *apiSecret == "" || *room == "" || *studentID == 0 {
		log.Fatal("api-key, api-secret, room and student-id are required")
	}

	metadata, err := sonic.Marshal(studentMetadata{
		ID:             *studentID,
		Name:           *name,
		CEFRLevel:      *level,
		NativeLanguage: *language,
	})
	if err != nil {
		log.Fatal("Error while encoding metadata: ", err)
	}

	token, err := auth.NewAccessToken(*apiKey, *apiSecret).
		SetIdentity(*identity).
		SetName(*name).
		SetMetadata(string(metadata)).
		SetValidFor(*validity).
		SetVideoGrant(&auth.VideoGrant{RoomJoin: true, Room: *room}).
		ToJWT()
	if err != nil {
		log.Fatal("Error while minting token: ", err)
	}

	fmt.Println(token)
}
