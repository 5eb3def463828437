package auth

import (
	"fmt"
)

// AuthenticatePrivateChannel produces the auth token a realtime client
// presents to subscribe to a private channel. The signing input is
// "socketID:channelName" and the token is "appKey:signature".
func AuthenticatePrivateChannel(creds *Credentials, socketID, channelName string) string {
	signature := Sign([]byte(creds.Secret), []byte(socketID+":"+channelName))
	return creds.Key + ":" + signature
}

// AuthenticatePresenceChannel is AuthenticatePresenceChannelWithEncoder
// with the default JSON encoder.
func AuthenticatePresenceChannel(creds *Credentials, socketID, channelName string, userData any) (token string, channelData []byte, err error) {
	return AuthenticatePresenceChannelWithEncoder(creds, socketID, channelName, userData, JSONEncoder{})
}

// AuthenticatePresenceChannelWithEncoder produces the auth token for a
// presence channel subscription. The encoded user data is part of the
// signing input ("socketID:channelName:encodedData"), so the encoder
// must be deterministic; the encoded bytes are returned alongside the
// token because the client must send the exact same bytes as
// channel_data for the server to re-derive the signature.
func AuthenticatePresenceChannelWithEncoder(creds *Credentials, socketID, channelName string, userData any, encoder UserDataEncoder) (token string, channelData []byte, err error) {
	channelData, err = encoder.EncodeUserData(userData)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode presence user data: %w", err)
	}

	signingInput := socketID + ":" + channelName + ":" + string(channelData)
	signature := Sign([]byte(creds.Secret), []byte(signingInput))
	return creds.Key + ":" + signature, channelData, nil
}
