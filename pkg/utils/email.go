package utils

import (
	"crypto/rand"
	"crypto/tls"
	"fmt"
	"math/big"
	"net/smtp"
	"strings"

	"Nestling.com/config"
	"Nestling.com/pkg/constants"
)

const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateActivationCode 生成激活码（乱序字符串）
func GenerateActivationCode() (string, error) {
	var sb strings.Builder
	sb.Grow(constants.ActivationCodeLen)

	// 使用 crypto/rand 生成随机字符
	for i := 0; i < constants.ActivationCodeLen; i++ {
		index, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(chars[index.Int64()])
	}

	return sb.String(), nil
}

// SendActivationEmail 向新注册用户发送激活码
func SendActivationEmail(to, username, code string) error {
	smtpHost := config.ConfigInfo.Smtp.Host
	smtpPort := config.ConfigInfo.Smtp.Port
	smtpUser := config.ConfigInfo.Smtp.Username
	smtpPassword := config.ConfigInfo.Smtp.Password

	addr := smtpHost + ":" + smtpPort

	tlsconfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         smtpHost,
	}

	conn, err := tls.Dial("tcp", addr, tlsconfig)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	c, err := smtp.NewClient(conn, smtpHost)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err = c.Auth(smtp.PlainAuth("", smtpUser, smtpPassword, smtpHost)); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	msg := []byte("To: " + to + "\r\n" +
		"Subject: Welcome to Nestling, " + username + "!\r\n" +
		"\r\n" +
		"Your activation code is " + code + ". It expires in one hour.")

	if err = c.Mail(smtpUser); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = c.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	c.Quit()
	return nil
}
