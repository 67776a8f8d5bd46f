package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented dump of the tree, one node per line with its
// start line number when known. Debug aid only; analysis never reads it.
func Fprint(w io.Writer, n Node) {
	printNode(w, n, 0, "")
}

func printNode(w io.Writer, n Node, indent int, label string) {
	if n == nil {
		return
	}

	line := "   "
	if loc := n.Loc(); loc != nil {
		line = fmt.Sprintf("%3d", loc.Start.Line)
	}
	fmt.Fprintf(w, "%s%s%s%s\n", line, strings.Repeat("   ", indent+1), label, nodeName(n))

	for _, c := range children(n) {
		printNode(w, c.node, indent+1, c.label)
	}
}

type labeled struct {
	label string
	node  Node
}

func nodeName(n Node) string {
	switch v := n.(type) {
	case *Identifier:
		return "Identifier: " + v.Value
	case *IntConstant:
		return fmt.Sprintf("IntConstant: %d", v.Value)
	case *DoubleConstant:
		return fmt.Sprintf("DoubleConstant: %g", v.Value)
	case *BoolConstant:
		return fmt.Sprintf("BoolConstant: %t", v.Value)
	case *StringConstant:
		return fmt.Sprintf("StringConstant: %q", v.Value)
	case *BuiltinType:
		return "Type: " + v.T.String()
	case *NamedType:
		return "NamedType"
	case *ArrayType:
		return "ArrayType"
	case *ArithmeticExpr:
		return "ArithmeticExpr: " + v.Op.Value
	case *RelationalExpr:
		return "RelationalExpr: " + v.Op.Value
	case *EqualityExpr:
		return "EqualityExpr: " + v.Op.Value
	case *LogicalExpr:
		return "LogicalExpr: " + v.Op.Value
	case *AssignExpr:
		return "AssignExpr: " + v.Op.Value
	case *PostfixExpr:
		return "PostfixExpr: " + v.Op.Value
	default:
		name := fmt.Sprintf("%T", n)
		return strings.TrimPrefix(name, "*ast.")
	}
}

func children(n Node) []labeled {
	var out []labeled
	add := func(label string, c Node) {
		// typed nils arrive here as non-nil interfaces holding nothing useful,
		// so construction keeps optional children as untyped nil
		if c != nil {
			out = append(out, labeled{label, c})
		}
	}

	switch v := n.(type) {
	case *Program:
		for _, d := range v.Decls {
			add("", d)
		}
	case *VarDecl:
		add("", v.DeclType)
		add("", v.Ident)
	case *FnDecl:
		add("(return type) ", v.ReturnType)
		add("", v.Ident)
		for _, f := range v.Formals {
			add("(formals) ", f)
		}
		add("(body) ", v.Body)
	case *ClassDecl:
		add("", v.Ident)
		if v.Extends != nil {
			add("(extends) ", v.Extends)
		}
		for _, imp := range v.Implements {
			add("(implements) ", imp)
		}
		for _, m := range v.Members {
			add("", m)
		}
	case *InterfaceDecl:
		add("", v.Ident)
		for _, m := range v.Members {
			add("", m)
		}
	case *NamedType:
		add("", v.Ident)
	case *ArrayType:
		add("", v.Elem)
	case *StmtBlock:
		for _, d := range v.Decls {
			add("", d)
		}
		for _, s := range v.Stmts {
			add("", s)
		}
	case *IfStmt:
		add("(test) ", v.Test)
		add("(then) ", v.Then)
		add("(else) ", v.Else)
	case *WhileStmt:
		add("(test) ", v.Test)
		add("(body) ", v.Body)
	case *ForStmt:
		add("(init) ", v.Init)
		add("(test) ", v.Test)
		add("(step) ", v.Step)
		add("(body) ", v.Body)
	case *ReturnStmt:
		add("", v.Expr)
	case *PrintStmt:
		for _, a := range v.Args {
			add("(args) ", a)
		}
	case *SwitchStmt:
		add("", v.Expr)
		for _, c := range v.Cases {
			add("", c)
		}
	case *CaseStmt:
		if v.Value != nil {
			add("", v.Value)
		}
		for _, s := range v.Stmts {
			add("", s)
		}
	case *ArithmeticExpr:
		add("", v.Left)
		add("", v.Right)
	case *RelationalExpr:
		add("", v.Left)
		add("", v.Right)
	case *EqualityExpr:
		add("", v.Left)
		add("", v.Right)
	case *LogicalExpr:
		add("", v.Left)
		add("", v.Right)
	case *AssignExpr:
		add("", v.Left)
		add("", v.Right)
	case *ArrayAccess:
		add("", v.Base)
		add("(subscript) ", v.Subscript)
	case *FieldAccess:
		add("", v.Base)
		add("", v.Field)
	case *Call:
		add("", v.Base)
		add("", v.Field)
		for _, a := range v.Actuals {
			add("(actuals) ", a)
		}
	case *NewExpr:
		add("", v.CType)
	case *NewArrayExpr:
		add("", v.Size)
		add("", v.ElemType)
	case *PostfixExpr:
		add("", v.LValue)
	}
	return out
}
