// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing a chat session with the language model.
//
// # Key Types
//
//   - Conversation: ordered container for the messages of one session
//   - Message: single message with role, content and timestamp
//   - Role: message role enumeration (user, assistant, system)
//
// # Usage
//
// Create a new conversation:
//
//	conv := model.NewConversation("YandexGPT is ready to chat.")
//	conv.AddUser("Hello!")
//
// Conversations live for the process lifetime only; there is no
// persistence across restarts.
package model
