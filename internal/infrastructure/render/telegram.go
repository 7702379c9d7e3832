package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramPresenter отправляет превью фотографией в чат
type TelegramPresenter struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramPresenter авторизует бота. Пустой endpoint означает api.telegram.org.
func NewTelegramPresenter(token, endpoint string, chatID int64) (*TelegramPresenter, error) {
	if token == "" {
		return nil, errors.New("telegram token is empty")
	}
	if chatID == 0 {
		return nil, errors.New("telegram chat id is empty")
	}
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("authorize telegram bot: %w", err)
	}

	return &TelegramPresenter{
		api:    api,
		chatID: chatID,
	}, nil
}

// Present кодирует превью в JPEG и отправляет его с подписью.
func (p *TelegramPresenter) Present(ctx context.Context, img image.Image, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}

	photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FileBytes{Name: "preview.jpg", Bytes: buf.Bytes()})
	photo.Caption = caption
	if _, err := p.api.Send(photo); err != nil {
		return fmt.Errorf("send preview: %w", err)
	}
	return nil
}

// BotName возвращает имя авторизованного бота.
func (p *TelegramPresenter) BotName() string {
	return p.api.Self.UserName
}
