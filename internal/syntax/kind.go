// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"fmt"

	"gopkg.driplang.org/parser.go/internal/idl"
	"gopkg.driplang.org/parser.go/internal/optional"
)

// SyntaxKind tags every node and token of the tree. Node kinds come first.
// Token kinds mirror idl.TokenKind one to one starting at syntaxKindTokenBase.
type SyntaxKind uint16

const (
	SyntaxKindRoot                SyntaxKind = 0
	SyntaxKindError               SyntaxKind = 1
	SyntaxKindLiteral             SyntaxKind = 2
	SyntaxKindVariableRef         SyntaxKind = 3
	SyntaxKindInfixExpr           SyntaxKind = 4
	SyntaxKindPrefixExpr          SyntaxKind = 5
	SyntaxKindRoundBracketExpr    SyntaxKind = 6
	SyntaxKindVariableDef         SyntaxKind = 7
	SyntaxKindConstDef            SyntaxKind = 8
	SyntaxKindAssignDef           SyntaxKind = 9
	SyntaxKindUseDecl             SyntaxKind = 10
	SyntaxKindPath                SyntaxKind = 11
	SyntaxKindFnDef               SyntaxKind = 12
	SyntaxKindFnParamListDef      SyntaxKind = 13
	SyntaxKindFnParamDef          SyntaxKind = 14
	SyntaxKindFnReturnDef         SyntaxKind = 15
	SyntaxKindFnReturnTypeListDef SyntaxKind = 16
	SyntaxKindFnReturnTypeDef     SyntaxKind = 17
	SyntaxKindFnBodyDef           SyntaxKind = 18
	SyntaxKindStructDef           SyntaxKind = 19
	SyntaxKindStructFieldListDef  SyntaxKind = 20
	SyntaxKindStructFieldDef      SyntaxKind = 21
	SyntaxKindTraitDef            SyntaxKind = 22
	SyntaxKindTraitListsDef       SyntaxKind = 23
	SyntaxKindTraitTypeListDef    SyntaxKind = 24
	SyntaxKindTraitFnListDef      SyntaxKind = 25
	SyntaxKindType                SyntaxKind = 26

	syntaxKindTokenBase SyntaxKind = 64
)

const (
	SyntaxKindInvalid        = syntaxKindTokenBase + SyntaxKind(idl.TokenKindInvalid)
	SyntaxKindWhitespace     = syntaxKindTokenBase + SyntaxKind(idl.TokenKindWhitespace)
	SyntaxKindComment        = syntaxKindTokenBase + SyntaxKind(idl.TokenKindComment)
	SyntaxKindIdent          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindIdent)
	SyntaxKindNumber         = syntaxKindTokenBase + SyntaxKind(idl.TokenKindNumber)
	SyntaxKindFnKw           = syntaxKindTokenBase + SyntaxKind(idl.TokenKindFnKw)
	SyntaxKindUseKw          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindUseKw)
	SyntaxKindExternKw       = syntaxKindTokenBase + SyntaxKind(idl.TokenKindExternKw)
	SyntaxKindStructKw       = syntaxKindTokenBase + SyntaxKind(idl.TokenKindStructKw)
	SyntaxKindTraitKw        = syntaxKindTokenBase + SyntaxKind(idl.TokenKindTraitKw)
	SyntaxKindTypeKw         = syntaxKindTokenBase + SyntaxKind(idl.TokenKindTypeKw)
	SyntaxKindSelfVarKw      = syntaxKindTokenBase + SyntaxKind(idl.TokenKindSelfVarKw)
	SyntaxKindSelfTypeKw     = syntaxKindTokenBase + SyntaxKind(idl.TokenKindSelfTypeKw)
	SyntaxKindConstKw        = syntaxKindTokenBase + SyntaxKind(idl.TokenKindConstKw)
	SyntaxKindVariableKw     = syntaxKindTokenBase + SyntaxKind(idl.TokenKindVariableKw)
	SyntaxKindArrow          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindArrow)
	SyntaxKindBang           = syntaxKindTokenBase + SyntaxKind(idl.TokenKindBang)
	SyntaxKindQuest          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindQuest)
	SyntaxKindPlus           = syntaxKindTokenBase + SyntaxKind(idl.TokenKindPlus)
	SyntaxKindMinus          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindMinus)
	SyntaxKindStar           = syntaxKindTokenBase + SyntaxKind(idl.TokenKindStar)
	SyntaxKindSlash          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindSlash)
	SyntaxKindCircumflex     = syntaxKindTokenBase + SyntaxKind(idl.TokenKindCircumflex)
	SyntaxKindCircumflex2    = syntaxKindTokenBase + SyntaxKind(idl.TokenKindCircumflex2)
	SyntaxKindAnd            = syntaxKindTokenBase + SyntaxKind(idl.TokenKindAnd)
	SyntaxKindAnd2           = syntaxKindTokenBase + SyntaxKind(idl.TokenKindAnd2)
	SyntaxKindPipe           = syntaxKindTokenBase + SyntaxKind(idl.TokenKindPipe)
	SyntaxKindPipe2          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindPipe2)
	SyntaxKindEquals         = syntaxKindTokenBase + SyntaxKind(idl.TokenKindEquals)
	SyntaxKindEquals2        = syntaxKindTokenBase + SyntaxKind(idl.TokenKindEquals2)
	SyntaxKindPercent        = syntaxKindTokenBase + SyntaxKind(idl.TokenKindPercent)
	SyntaxKindDollar         = syntaxKindTokenBase + SyntaxKind(idl.TokenKindDollar)
	SyntaxKindHashtag        = syntaxKindTokenBase + SyntaxKind(idl.TokenKindHashtag)
	SyntaxKindAt             = syntaxKindTokenBase + SyntaxKind(idl.TokenKindAt)
	SyntaxKindUnderscore     = syntaxKindTokenBase + SyntaxKind(idl.TokenKindUnderscore)
	SyntaxKindDot            = syntaxKindTokenBase + SyntaxKind(idl.TokenKindDot)
	SyntaxKindComma          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindComma)
	SyntaxKindColon          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindColon)
	SyntaxKindSemicolon      = syntaxKindTokenBase + SyntaxKind(idl.TokenKindSemicolon)
	SyntaxKindQuote          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindQuote)
	SyntaxKindSingleQuote    = syntaxKindTokenBase + SyntaxKind(idl.TokenKindSingleQuote)
	SyntaxKindGrave          = syntaxKindTokenBase + SyntaxKind(idl.TokenKindGrave)
	SyntaxKindLCurlyBracket  = syntaxKindTokenBase + SyntaxKind(idl.TokenKindLCurlyBracket)
	SyntaxKindRCurlyBracket  = syntaxKindTokenBase + SyntaxKind(idl.TokenKindRCurlyBracket)
	SyntaxKindLRoundBracket  = syntaxKindTokenBase + SyntaxKind(idl.TokenKindLRoundBracket)
	SyntaxKindRRoundBracket  = syntaxKindTokenBase + SyntaxKind(idl.TokenKindRRoundBracket)
	SyntaxKindLAngledBracket = syntaxKindTokenBase + SyntaxKind(idl.TokenKindLAngledBracket)
	SyntaxKindRAngledBracket = syntaxKindTokenBase + SyntaxKind(idl.TokenKindRAngledBracket)
	SyntaxKindLSquareBracket = syntaxKindTokenBase + SyntaxKind(idl.TokenKindLSquareBracket)
	SyntaxKindRSquareBracket = syntaxKindTokenBase + SyntaxKind(idl.TokenKindRSquareBracket)
)

var nodeKindNames = [...]string{
	SyntaxKindRoot: "Root",
	SyntaxKindError: "Error",
	SyntaxKindLiteral: "Literal",
	SyntaxKindVariableRef: "VariableRef",
	SyntaxKindInfixExpr: "InfixExpr",
	SyntaxKindPrefixExpr: "PrefixExpr",
	SyntaxKindRoundBracketExpr: "RoundBracketExpr",
	SyntaxKindVariableDef: "VariableDef",
	SyntaxKindConstDef: "ConstDef",
	SyntaxKindAssignDef: "AssignDef",
	SyntaxKindUseDecl: "UseDecl",
	SyntaxKindPath: "Path",
	SyntaxKindFnDef: "FnDef",
	SyntaxKindFnParamListDef: "FnParamListDef",
	SyntaxKindFnParamDef: "FnParamDef",
	SyntaxKindFnReturnDef: "FnReturnDef",
	SyntaxKindFnReturnTypeListDef: "FnReturnTypeListDef",
	SyntaxKindFnReturnTypeDef: "FnReturnTypeDef",
	SyntaxKindFnBodyDef: "FnBodyDef",
	SyntaxKindStructDef: "StructDef",
	SyntaxKindStructFieldListDef: "StructFieldListDef",
	SyntaxKindStructFieldDef: "StructFieldDef",
	SyntaxKindTraitDef: "TraitDef",
	SyntaxKindTraitListsDef: "TraitListsDef",
	SyntaxKindTraitTypeListDef: "TraitTypeListDef",
	SyntaxKindTraitFnListDef: "TraitFnListDef",
	SyntaxKindType: "Type",
}

// FromToken maps a token kind onto its syntax kind. The mapping is total and
// injective.
func FromToken(kind idl.TokenKind) SyntaxKind {
	return syntaxKindTokenBase + SyntaxKind(kind)
}

// Token returns the token kind mirrored by k, if k is a token kind.
func (k SyntaxKind) Token() optional.Optional[idl.TokenKind] {
	if !k.IsToken() {
		return optional.None[idl.TokenKind]()
	}
	return optional.Some(idl.TokenKind(k - syntaxKindTokenBase))
}

func (k SyntaxKind) IsToken() bool {
	return k >= syntaxKindTokenBase && int(k-syntaxKindTokenBase) < idl.TokenKindCount
}

func (k SyntaxKind) IsNode() bool {
	return int(k) < len(nodeKindNames)
}

func (k SyntaxKind) IsTrivia() bool {
	return k == SyntaxKindWhitespace || k == SyntaxKindComment
}

func (k SyntaxKind) String() string {
	switch {
	case k.IsNode():
		return nodeKindNames[k]
	case k.IsToken():
		return idl.TokenKind(k - syntaxKindTokenBase).String()
	default:
		return fmt.Sprintf("SyntaxKind(%d)", k)
	}
}

// NodeKinds returns every node kind in ascending order.
func NodeKinds() []SyntaxKind {
	kinds := make([]SyntaxKind, 0, len(nodeKindNames))
	for x := range nodeKindNames {
		kinds = append(kinds, SyntaxKind(x))
	}
	return kinds
}
