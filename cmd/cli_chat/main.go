package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"vakeel-api/internal/config"
	"vakeel-api/internal/domain"
	"vakeel-api/internal/llm"
	"vakeel-api/internal/repository"
	"vakeel-api/internal/service"
)

const cliUserID = "cli-user"

// chatState es lo que la CLI recuerda entre turnos.
type chatState struct {
	sessionID string
	language  string
}

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	store, closeStore, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	var llmClient llm.LLMClient
	if !cfg.MockLLM() {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout, logger)
	}
	gateway := llm.NewGateway(llmClient, cfg.LLMTimeout, logger)
	engine, err := service.NewTemplateEngine(gateway)
	if err != nil {
		log.Fatal(err)
	}
	sessionSvc := service.NewSessionService(store, store)
	chatSvc := service.NewChatService(store, sessionSvc, service.NewBasicContextService(store), gateway, logger)
	documentSvc := service.NewDocumentService(store, engine, gateway, logger)

	fmt.Printf("---- VakeelGPT CLI (storage: %s, mock llm: %t) ----\n", store.Mode(), gateway.Mock())
	fmt.Println("Comandos: /new, /sessions, /lang <codigo>, /draft <tipo> clave=valor..., /quit")

	state := &chatState{language: string(domain.DefaultLanguage)}
	for {
		fmt.Print("Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if !strings.HasPrefix(text, "/") {
			msg, err := chatSvc.Chat(ctx, service.ChatInput{
				UserID:    cliUserID,
				SessionID: state.sessionID,
				Message:   text,
				Language:  state.language,
			})
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			state.sessionID = msg.SessionID
			fmt.Printf("VakeelGPT > %s\n", msg.Response)
			continue
		}

		cmd, args, _ := strings.Cut(text, " ")
		switch cmd {
		case "/quit", "/exit":
			fmt.Println("Saliendo...")
			return
		case "/new":
			state.sessionID = ""
			fmt.Println("Nueva conversacion: la sesion se crea con el proximo mensaje.")
		case "/lang":
			state.language = string(domain.ParseLanguage(args))
			fmt.Printf("Idioma: %s\n", state.language)
		case "/sessions":
			sessions, err := sessionSvc.List(ctx, cliUserID)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			for _, s := range sessions {
				marker := " "
				if s.ID == state.sessionID {
					marker = "*"
				}
				fmt.Printf("%s %s  %-55s  %d mensajes\n", marker, s.ID, s.Title, s.MessageCount)
			}
		case "/draft":
			docType, fields, err := parseDraftArgs(args)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			doc, err := documentSvc.Draft(ctx, service.DraftInput{
				UserID:       cliUserID,
				Title:        docType,
				Type:         docType,
				Language:     state.language,
				CustomFields: fields,
			})
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("Documento %s (%s)\n\n%s\n", doc.ID, doc.Status, doc.Content)
		default:
			fmt.Println("Comando desconocido.")
		}
	}
}

// parseDraftArgs lee "<tipo> clave=valor ..." para /draft. Los valores no
// llevan espacios; usar guion bajo si hace falta.
func parseDraftArgs(args string) (string, map[string]string, error) {
	parts := strings.Fields(args)
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("uso: /draft <tipo> clave=valor...")
	}
	fields := make(map[string]string, len(parts)-1)
	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return "", nil, fmt.Errorf("campo invalido %q, se espera clave=valor", p)
		}
		fields[k] = strings.ReplaceAll(v, "_", " ")
	}
	return parts[0], fields, nil
}
